package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"todo-manager/internal/domain"
	"todo-manager/internal/logging"
	"todo-manager/internal/menu"
	"todo-manager/internal/repository"
	"todo-manager/internal/validation"
)

// errEndOfInput is returned by prompts once the input is exhausted
var errEndOfInput = stderrors.New("end of input")

// Shell is the interactive menu loop. It owns all terminal input and output
// and delegates state changes to the menu package.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	list   *domain.TaskList
	repo   repository.Repository
	errors *ErrorHandler
}

// NewShell creates a shell reading lines from in and writing to out
func NewShell(in io.Reader, out io.Writer, list *domain.TaskList, repo repository.Repository) *Shell {
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		list:   list,
		repo:   repo,
		errors: NewErrorHandler(),
	}
}

// Run loads the saved tasks, serves menu requests until the user exits or the
// input ends, then saves the list.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.repo.Load(ctx, s.list); err != nil {
		if !repository.IsRecoverable(err) {
			return s.errors.Handle("load tasks", err)
		}
		logging.Debugf("starting with an empty list: %v", err)
		s.println(s.errors.HandleSimple(err))
	} else {
		logging.Debugf("loaded %d tasks", s.list.Len())
	}

	for {
		exit, err := s.step()
		if stderrors.Is(err, errEndOfInput) {
			logging.Debugln("input closed, exiting")
			break
		}
		if err != nil {
			// Keep what the session already changed.
			if saveErr := s.save(ctx); saveErr != nil {
				return stderrors.Join(err, saveErr)
			}
			return err
		}
		if exit {
			break
		}
	}

	return s.save(ctx)
}

func (s *Shell) save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.list); err != nil {
		return s.errors.Handle("save tasks", err)
	}
	logging.Debugf("saved %d tasks", s.list.Len())
	return nil
}

// step serves one menu request and reports whether the user chose to exit
func (s *Shell) step() (bool, error) {
	s.printMenu()
	line, err := s.prompt("Choose an action: ")
	if err != nil {
		return false, err
	}
	s.println()

	choice, err := menu.ParseChoice(line)
	if err != nil {
		s.println("Invalid choice. Please try again.")
		return false, nil
	}

	req, err := s.gather(choice)
	if err != nil {
		return false, err
	}

	outcome, err := menu.Apply(s.list, req)
	if err != nil {
		if !s.errors.IsRecoverable(err) {
			return false, err
		}
		s.println(s.errors.HandleSimple(err))
	}
	s.render(outcome)
	return outcome.Exit, nil
}

// gather prompts for the fields choice needs
func (s *Shell) gather(choice menu.Choice) (menu.Request, error) {
	req := menu.Request{Choice: choice}
	var err error

	switch choice {
	case menu.ChoiceCreate:
		if req.Name, err = s.prompt("Enter task name: "); err != nil {
			return req, err
		}
		if req.Description, err = s.prompt("Enter task description: "); err != nil {
			return req, err
		}
		if req.Status, err = s.promptStatus(); err != nil {
			return req, err
		}
		req.CreatedAt, err = s.prompt("Enter task creation date: ")

	case menu.ChoiceEditDescription:
		if req.Index, err = s.promptIndex("Enter task number to edit its description: "); err != nil {
			return req, err
		}
		// An unknown index is rejected by Apply without asking for the text.
		if menu.CheckIndex(s.list, req.Index) == nil {
			req.Description, err = s.prompt("Enter new task description: ")
		}

	case menu.ChoiceMarkDone:
		req.Index, err = s.promptIndex(fmt.Sprintf("Enter task number to mark as '%s': ", domain.StatusDone))

	case menu.ChoiceMarkUndone:
		req.Index, err = s.promptIndex(fmt.Sprintf("Enter task number to mark as '%s': ", domain.StatusNotDone))

	case menu.ChoiceDelete:
		req.Index, err = s.promptIndex("Enter task number to delete: ")
	}

	return req, err
}

func (s *Shell) render(outcome menu.Outcome) {
	if outcome.Listed {
		if len(outcome.Tasks) == 0 {
			s.println("Task list is empty.")
		}
		for i, task := range outcome.Tasks {
			fmt.Fprintf(s.out, "Task #%d\n%s\n\n", i+1, task)
		}
	}
	if outcome.Message != "" {
		s.println(outcome.Message)
	}
	if outcome.Task != nil {
		s.println(outcome.Task)
	}
}

func (s *Shell) printMenu() {
	for _, item := range menu.Items() {
		fmt.Fprintf(s.out, "%s. %s\n", item.Choice, item.Label)
	}
}

// prompt prints label and reads one line of UTF-8 text
func (s *Shell) prompt(label string) (string, error) {
	for {
		fmt.Fprint(s.out, label)
		line, err := s.readLine()
		if stderrors.Is(err, io.EOF) {
			s.println()
			return "", errEndOfInput
		}
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if utf8.ValidString(line) {
			return line, nil
		}
		s.println("Input is not valid UTF-8 text. Please try again.")
	}
}

// readLine returns the next line without its terminator. Lines have no
// length limit, and a final line without a newline is still returned.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!stderrors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// promptIndex asks until the answer is a whole number
func (s *Shell) promptIndex(label string) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		index, err := validation.ParseIndex(line)
		if err == nil {
			return index, nil
		}
		s.println(s.errors.HandleSimple(err))
	}
}

// promptStatus asks until the answer names one of the two statuses
func (s *Shell) promptStatus() (domain.Status, error) {
	label := fmt.Sprintf("Enter task status (%s/%s): ", domain.StatusDone, domain.StatusNotDone)
	for {
		line, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		status, err := validation.ParseStatus(line)
		if err == nil {
			return status, nil
		}
		s.println(s.errors.HandleSimple(err))
	}
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.out, args...)
}
