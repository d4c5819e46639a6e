package delivery

import (
	"fmt"
	"strconv"
	"strings"
)

// readInt re-prompts until the input parses as an integer.
func (d *Delivery) readInt(prompt string) (int, error) {
	for {
		line, err := d.reader.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(d.out, "Invalid input! Enter a number.")
			continue
		}

		return n, nil
	}
}

func (d *Delivery) readFloat(prompt string) (float64, error) {
	for {
		line, err := d.reader.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		f, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if convErr != nil || f < 0 {
			fmt.Fprintln(d.out, "Invalid input! Enter a non-negative number.")
			continue
		}

		return f, nil
	}
}

// readSecret reads a credential with echo suppressed. The value is persisted
// verbatim, so the same delimiter rule as readField applies.
func (d *Delivery) readSecret(prompt string) (string, error) {
	for {
		secret, err := d.reader.ReadSecret(prompt)
		if err != nil {
			return "", err
		}

		if secret == "" || strings.Contains(secret, ",") {
			fmt.Fprintln(d.out, "Value must be non-empty and must not contain commas.")
			continue
		}

		return secret, nil
	}
}

// readField reads a text value. Commas are rejected because the persisted
// format uses them as delimiters and has no escaping.
func (d *Delivery) readField(prompt string) (string, error) {
	for {
		line, err := d.reader.ReadLine(prompt)
		if err != nil {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, ",") {
			fmt.Fprintln(d.out, "Value must be non-empty and must not contain commas.")
			continue
		}

		return line, nil
	}
}
