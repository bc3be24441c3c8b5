// Package cli wraps the interactive prompts used by tuplegen's init wizard.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}
	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func PromptStringDefault(label, fallback string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: fallback,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}

	return prompt.Run()
}

// PromptIntRange prompts for an integer between low and high inclusive,
// rejecting anything else before the prompt returns. The fallback is used
// when the user accepts the prompt without typing a value.
func PromptIntRange(label string, low, high, fallback int) (int, error) {
	validate := func(s string) error {
		val, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}

		if int(val) < low || int(val) > high {
			return fmt.Errorf("value %d is not between %d and %d", val, low, high) //nolint:err113
		}

		return nil
	}

	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(fallback),
		Validate: validate,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseInt(txt, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return int(val), nil
}
