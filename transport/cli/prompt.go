package cli

import (
	"io"
	"strconv"
	"strings"

	"pitstop/shared/validator"
)

// promptLine prints the label and reads one trimmed line. io.EOF ends the
// surrounding menu loop.
func (c *CLI) promptLine(label string) (string, error) {
	c.printf("%s", label)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func (c *CLI) promptInt(label string) (int, error) {
	for {
		line, err := c.promptLine(label)
		if err != nil {
			return 0, err
		}

		value, convErr := strconv.Atoi(line)
		if convErr != nil {
			c.printf("Please enter a number.\n")

			continue
		}

		return value, nil
	}
}

// promptValid re-prompts until the input passes the named validation tag.
func (c *CLI) promptValid(label, tag, invalidMsg string) (string, error) {
	for {
		line, err := c.promptLine(label)
		if err != nil {
			return "", err
		}

		if validator.ValidateVar(line, tag) != nil {
			c.printf("%s\n", invalidMsg)

			continue
		}

		return line, nil
	}
}
