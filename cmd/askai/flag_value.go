package askai

import (
	"fmt"
	"strconv"
	"strings"
)

// yesNoValue lets --dry-run accept bare form as well as yes/no style values.
type yesNoValue struct {
	target *bool
}

func newYesNoValue(target *bool) *yesNoValue {
	return &yesNoValue{target: target}
}

func (value *yesNoValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return strconv.FormatBool(*value.target)
}

func (value *yesNoValue) Set(input string) error {
	parsed, ok := parseYesNo(input)
	if !ok {
		return fmt.Errorf("invalid boolean value %q", input)
	}
	*value.target = parsed
	return nil
}

func (value *yesNoValue) Type() string { return "bool" }

func parseYesNo(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "true", "t", "1", "yes", "y", "on":
		return true, true
	case "false", "f", "0", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
