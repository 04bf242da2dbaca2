package form

import (
	"errors"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/manifoldco/promptui"
)

// Form collects prompted values and keeps the first error.
type Form struct {
	err error
}

type Runner interface {
	Run() (string, error)
}

// TextPrompt asks for a question or answer, enforcing the service's length rule.
func TextPrompt(label string) *promptui.Prompt {
	return &promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			return qaa.ValidateText(label, s)
		},
	}
}

// ConfirmPrompt asks a yes/no question.
func ConfirmPrompt(label string) *promptui.Prompt {
	return &promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
}

func (f *Form) Add(field *string, fun Runner) {
	if f.err != nil {
		return
	}
	val, err := fun.Run()
	if err != nil {
		f.err = err
		return
	}
	*field = val
}

// AddConfirm sets field to true when the answer starts with y or Y.
// promptui reports a declined confirm as ErrAbort, which is not an error here.
func (f *Form) AddConfirm(field *bool, fun Runner) {
	if f.err != nil {
		return
	}
	val, err := fun.Run()
	if err != nil && !errors.Is(err, promptui.ErrAbort) {
		f.err = err
		return
	}
	*field = len(val) > 0 && (val[0] == 'y' || val[0] == 'Y')
}

func (f *Form) Valid() error {
	return f.err
}
