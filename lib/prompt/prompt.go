// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bureau-foundation/storyboard/lib/model"
	"github.com/bureau-foundation/storyboard/lib/navigator"
	"github.com/bureau-foundation/storyboard/lib/tui"
)

// Runner runs prompts as bubbletea programs over one input and output.
type Runner struct {
	input  io.Reader
	output io.Writer
	keys   KeyMap
	theme  tui.Theme
}

// NewRunner returns a Runner reading keys from input and drawing to
// output. When input is a terminal, each prompt puts it in raw mode for
// its duration.
func NewRunner(input io.Reader, output io.Writer) *Runner {
	return &Runner{
		input:  input,
		output: output,
		keys:   DefaultKeyMap,
		theme:  tui.DefaultTheme,
	}
}

// Prompts returns the runner's prompts as a navigator bundle.
func (runner *Runner) Prompts() navigator.Prompts {
	return navigator.Prompts{
		CreateEpic:         runner.CreateEpic,
		CreateStory:        runner.CreateStory,
		PickStatus:         runner.PickStatus,
		ConfirmDeleteEpic:  runner.ConfirmDeleteEpic,
		ConfirmDeleteStory: runner.ConfirmDeleteStory,
	}
}

// CreateEpic asks for the fields of a new epic.
func (runner *Runner) CreateEpic() (model.Epic, error) {
	name, description, err := runner.fields("New epic")
	if err != nil {
		return model.Epic{}, err
	}
	return model.NewEpic(name, description), nil
}

// CreateStory asks for the fields of a new story.
func (runner *Runner) CreateStory() (model.Story, error) {
	name, description, err := runner.fields("New story")
	if err != nil {
		return model.Story{}, err
	}
	return model.NewStory(name, description), nil
}

// PickStatus asks for a status. Dismissing the picker chooses none.
func (runner *Runner) PickStatus() (model.Status, bool, error) {
	final, err := runner.run(newStatusModel(runner.keys, runner.theme))
	if err != nil {
		return "", false, err
	}
	picker := final.(statusModel)
	if !picker.selected {
		return "", false, nil
	}
	return picker.chosen, true, nil
}

// ConfirmDeleteEpic asks whether to delete an epic with its stories.
func (runner *Runner) ConfirmDeleteEpic() (bool, error) {
	return runner.confirm("Delete this epic? All of its stories will also be deleted.")
}

// ConfirmDeleteStory asks whether to delete a story.
func (runner *Runner) ConfirmDeleteStory() (bool, error) {
	return runner.confirm("Delete this story?")
}

func (runner *Runner) fields(title string) (string, string, error) {
	final, err := runner.run(newFieldsModel(title, runner.keys, runner.theme))
	if err != nil {
		return "", "", err
	}
	form := final.(fieldsModel)
	if form.cancelled || !form.submitted {
		return "", "", navigator.ErrCancelled
	}
	return form.Name(), form.Description(), nil
}

func (runner *Runner) confirm(question string) (bool, error) {
	final, err := runner.run(newConfirmModel(question, runner.keys, runner.theme))
	if err != nil {
		return false, err
	}
	return final.(confirmModel).yes, nil
}

// run executes one prompt program to completion and returns its final
// model. The driving loop owns signals, so the program installs no
// handler of its own.
func (runner *Runner) run(prompt tea.Model) (tea.Model, error) {
	var program *tea.Program
	input := runner.input
	if !isTerminal(input) {
		// A pipe or file can run dry mid-prompt. Quit instead of
		// waiting for keys that will never come; the final model then
		// holds no answer, which each prompt reads as cancel or no.
		input = &eofReader{reader: input, onEOF: func() { program.Quit() }}
	}
	program = tea.NewProgram(prompt,
		tea.WithInput(input),
		tea.WithOutput(runner.output),
		tea.WithoutSignalHandler(),
	)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

func isTerminal(input io.Reader) bool {
	file, ok := input.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// eofReader calls onEOF once when the underlying reader is exhausted.
type eofReader struct {
	reader io.Reader
	onEOF  func()
	once   sync.Once
}

func (r *eofReader) Read(buffer []byte) (int, error) {
	count, err := r.reader.Read(buffer)
	if errors.Is(err, io.EOF) {
		r.once.Do(r.onEOF)
	}
	return count, err
}
