package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter asks the user for input.
type Prompter interface {
	// Input asks for a string. validate may be nil.
	Input(message, help, def string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, def bool) (bool, error)
}

// surveyPrompter prompts on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, help, def string, validate func(string) error) (string, error) {
	var result string

	prompt := &survey.Input{
		Message: message,
		Default: def,
		Help:    help,
	}

	validators := []survey.Validator{survey.Required}
	if validate != nil {
		validators = append(validators, stringValidator(validate))
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(validators...))); err != nil {
		return "", err
	}
	return result, nil
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var result bool

	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}

	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// stringValidator adapts a string check to a survey validator.
func stringValidator(check func(string) error) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		return check(str)
	}
}
