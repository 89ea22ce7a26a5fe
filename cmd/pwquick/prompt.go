package main

import (
	"errors"
	"fmt"

	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/erikgeiser/promptkit/textinput"
)

// errPromptAborted is returned when the user leaves a prompt with Esc or Ctrl-C.
var errPromptAborted = errors.New("prompt aborted")

// prompter asks the user to pick an option or type a value.
type prompter interface {
	Select(prompt string, options []string) (int, error)
	Input(prompt, initial string, validate func(string) error) (string, error)
}

type promptOption struct {
	index int
	label string
}

func (o promptOption) String() string { return o.label }

type terminalPrompter struct {
	pageSize int
}

func (p terminalPrompter) Select(prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, errors.New("nothing to choose from")
	}
	items := make([]promptOption, len(options))
	for i, label := range options {
		items[i] = promptOption{index: i, label: label}
	}
	sel := selection.New(prompt, selection.Choices(items))
	if p.pageSize > 0 {
		sel.PageSize = p.pageSize
	}
	choice, err := sel.RunPrompt()
	if err != nil {
		return -1, translatePromptError(err)
	}
	item, ok := choice.Value.(promptOption)
	if !ok {
		return -1, fmt.Errorf("unexpected selection value %T", choice.Value)
	}
	return item.index, nil
}

func (p terminalPrompter) Input(prompt, initial string, validate func(string) error) (string, error) {
	input := textinput.New(prompt)
	input.InitialValue = initial
	if validate != nil {
		input.Validate = validate
	}
	value, err := input.RunPrompt()
	if err != nil {
		return "", translatePromptError(err)
	}
	return value, nil
}

func translatePromptError(err error) error {
	if errors.Is(err, promptkit.ErrAborted) {
		return errPromptAborted
	}
	return err
}
