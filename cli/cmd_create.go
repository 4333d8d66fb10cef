package main

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/verisum/verisum/internals"
)

// CreateCommand defines the CLI command parameters
type CreateCommand struct {
	Directory       string   `json:"directory"`
	Output          string   `json:"output"`
	Overwrite       bool     `json:"overwrite"`
	HashAlgorithm   string   `json:"hash-algorithm"`
	ExcludeBasename []string `json:"exclude-basename"`
	ConfigOutput    bool     `json:"config"`
	JSONOutput      bool     `json:"json"`
}

// CreateJSONResult is a struct used to serialize JSON output
type CreateJSONResult struct {
	Message   string   `json:"message"`
	Processed int      `json:"processed"`
	Skipped   []string `json:"skipped"`
}

var createCommand *CreateCommand

var argCreateDirectory string
var argCreateOutput string
var argCreateOverwrite bool
var argCreateHashAlgorithm string
var argCreateExcludeBasename []string

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [directory]",
	Short: "Create a checksum manifest for a directory tree",
	Long: `This command hashes every file below the given directory and writes a JSON
manifest with one entry per file. For example:

	verisum create /srv/data --algorithm sha256 --output checksums.json

The manifest's own output file is always excluded from the snapshot.
`,
	// Args considers all arguments (in the function arguments and global
	// variables of the command line parser) with the goal to fill the global
	// CreateCommand instance with admissible parameters.
	Args: func(cmd *cobra.Command, args []string) error {
		// validity checks
		if len(args) > 0 && argCreateDirectory == "" {
			argCreateDirectory = args[0]
		} else if len(args) > 0 && argCreateDirectory != "" {
			return fmt.Errorf(`cannot provide directory as positional argument and via --directory; remove --directory`)
		} else if len(args) == 0 && argCreateDirectory == "" {
			return fmt.Errorf(`expected one positional argument {directory}, got none`)
		}

		defaults, err := loadDefaults()
		if err != nil {
			return err
		}

		// create global CreateCommand instance
		createCommand = new(CreateCommand)
		createCommand.Directory = argCreateDirectory
		createCommand.Output = argCreateOutput
		createCommand.Overwrite = argCreateOverwrite
		createCommand.HashAlgorithm = argCreateHashAlgorithm
		createCommand.ExcludeBasename = argCreateExcludeBasename
		createCommand.ConfigOutput = argConfigOutput
		createCommand.JSONOutput = argJSONOutput

		// handle environment variables
		envOverwrite, errOverwrite := EnvToBool(`VERISUM_OVERWRITE`)
		if errOverwrite == nil {
			createCommand.Overwrite = envOverwrite
		}
		envJSON, errJSON := EnvToBool(`VERISUM_JSON`)
		if errJSON == nil {
			createCommand.JSONOutput = envJSON
			argJSONOutput = envJSON
		}

		// default values
		if createCommand.HashAlgorithm == "" {
			createCommand.HashAlgorithm = EnvOr(`VERISUM_HASH_ALGORITHM`, defaults.Algorithm)
		}
		if createCommand.HashAlgorithm == "" {
			createCommand.HashAlgorithm = string(internals.DefaultHash)
		}
		if createCommand.Output == "" {
			createCommand.Output = EnvOr(`VERISUM_OUTPUT`, defaults.Output)
		}
		if createCommand.Output == "" {
			createCommand.Output = internals.ManifestName
		}
		if len(createCommand.ExcludeBasename) == 0 {
			createCommand.ExcludeBasename = defaults.ExcludeBasename
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, createCommand}
		exitCode, cmdError = createCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	f := createCmd.PersistentFlags()

	f.StringVar(&argCreateDirectory, `directory`, "", `directory tree to snapshot`)
	f.StringVarP(&argCreateOutput, `output`, `o`, "", `target location for the manifest file`)
	f.BoolVar(&argCreateOverwrite, `overwrite`, false, `if the manifest file already exists, overwrite it without asking`)
	f.StringVarP(&argCreateHashAlgorithm, `algorithm`, `a`, "", `hash algorithm to use`)
	f.StringSliceVar(&argCreateExcludeBasename, `exclude-basename`, []string{}, `any file with this particular filename is ignored`)
}

// Run executes the CLI command create on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error).
func (c *CreateCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	// consider c.Overwrite
	_, err := os.Stat(c.Output)
	if err == nil && !c.Overwrite {
		return 3, fmt.Errorf(existsErrMsg, c.Output)
	}

	builder := &internals.Builder{
		RootDir:         c.Directory,
		Algorithm:       internals.HashAlgo(c.HashAlgorithm),
		ExcludeName:     filepath.Base(c.Output),
		ExcludeBasename: c.ExcludeBasename,
	}
	if !c.JSONOutput {
		log.Printfln(`Scanning directory: %s`, c.Directory)
		builder.Progress = func(relPath string, err error) {
			if err != nil {
				log.Printfln(`  failed: %s: %s`, relPath, err)
			} else {
				log.Printfln(`  processed: %s`, relPath)
			}
		}
	}

	manifest, summary, err := builder.Build()
	if err != nil {
		return 2, err
	}
	if err := manifest.WriteFile(c.Output); err != nil {
		return 2, fmt.Errorf(`error writing manifest '%s': %s`, c.Output, err)
	}

	msg := fmt.Sprintf(`Done. Processed %d file(s), manifest written to '%s'`, summary.Processed, c.Output)
	if c.JSONOutput {
		data := CreateJSONResult{Message: msg, Processed: summary.Processed, Skipped: make([]string, 0, len(summary.Skipped))}
		for _, skipped := range summary.Skipped {
			data.Skipped = append(data.Skipped, skipped.RelPath)
		}
		jsonRepr, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
	} else {
		if len(summary.Skipped) > 0 {
			log.Printfln(`Warning: %d file(s) could not be processed and were omitted`, len(summary.Skipped))
		}
		w.Println(msg)
	}

	return 0, nil
}
