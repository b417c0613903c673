package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DefaultUsername is shown when no --username flag is given.
const DefaultUsername = "Unknown"

// Options holds values passed on the command line as --key=value.
type Options struct {
	Username string `mapstructure:"username"`
}

// ParseArgs decodes --key=value arguments into Options.
// Arguments of any other shape and unknown keys are ignored.
func ParseArgs(args []string) (*Options, error) {
	raw := make(map[string]any)
	for _, arg := range args {
		key, value, ok := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !ok || !strings.HasPrefix(arg, "--") || key == "" {
			continue
		}
		raw[key] = value
	}

	opts := &Options{}
	if err := mapstructure.Decode(raw, opts); err != nil {
		return nil, err
	}

	if opts.Username == "" {
		opts.Username = DefaultUsername
	}

	return opts, nil
}
