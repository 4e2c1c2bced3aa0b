package main

import (
	"context"
	"fmt"
	"os"

	"todo-manager/internal/cli"
	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
)

func main() {
	ctx := context.Background()

	if err := cli.ExecuteContext(ctx); err != nil {
		if appErr, ok := errors.AsAppError(err); ok && errors.ShouldLogError(err) {
			logging.Logger().Error("todo failed", "code", appErr.Code, "cause", appErr.Error())
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
