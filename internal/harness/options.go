package harness

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

type Output struct {
	Directory string `yaml:"directory"`
	Filename  string `yaml:"filename"`
}

// Options is the declarative build and dev server configuration.
type Options struct {
	Entry         string `yaml:"entry"`
	Output        Output `yaml:"output"`
	DevServerPort int    `yaml:"devServerPort"`
	HotReload     bool   `yaml:"hotReload"`
	SourceMaps    bool   `yaml:"sourceMaps"`
}

func DefaultOptions() Options {
	return Options{
		Entry: "orderlist",
		Output: Output{
			Directory: "dist",
			Filename:  "bundle.js",
		},
		DevServerPort: 3000,
		HotReload:     true,
		SourceMaps:    true,
	}
}

// LoadOptions reads a YAML options file on top of the defaults.
// A missing file yields the defaults.
func LoadOptions(file string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("read options: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	switch {
	case o.Entry == "":
		return errors.New("options: entry is required")
	case o.Output.Directory == "":
		return errors.New("options: output.directory is required")
	case o.Output.Filename == "" || path.Base(o.Output.Filename) != o.Output.Filename:
		return fmt.Errorf("options: invalid output.filename %q", o.Output.Filename)
	case o.Output.Filename == IndexFile:
		return fmt.Errorf("options: output.filename must not be %s", IndexFile)
	case o.DevServerPort < 1 || o.DevServerPort > 65535:
		return fmt.Errorf("options: devServerPort %d out of range", o.DevServerPort)
	}
	return nil
}

// Addr is the dev server listen address.
func (o Options) Addr() string {
	return fmt.Sprintf(":%d", o.DevServerPort)
}
