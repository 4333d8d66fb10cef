package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/verisum/verisum/internals"
)

// VerifyCommand defines the CLI command parameters
type VerifyCommand struct {
	Manifest     string `json:"manifest"`
	Directory    string `json:"directory"`
	ConfigOutput bool   `json:"config"`
	JSONOutput   bool   `json:"json"`
}

// VerifyJSONResult is a struct used to serialize JSON output
type VerifyJSONResult struct {
	Total   int    `json:"total"`
	Passed  int    `json:"passed"`
	Failed  int    `json:"failed"`
	Missing int    `json:"missing"`
	Verdict string `json:"verdict"`
}

var verifyCommand *VerifyCommand

var argVerifyManifest string
var argVerifyDirectory string

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [manifest] [directory]",
	Short: "Verify a directory tree against a checksum manifest",
	Long: `This command re-hashes every file recorded in the manifest and reports
each one as ok, failed or missing, followed by summary counts and the
overall verdict. For example:

	verisum verify checksums.json
	verisum verify checksums.json /mnt/replica

Without a directory argument the manifest's recorded source directory
is verified. The exit code is 1 when the tree is compromised.
`,
	Args: func(cmd *cobra.Command, args []string) error {
		// validity checks
		if len(args) > 0 && argVerifyManifest == "" {
			argVerifyManifest = args[0]
		} else if len(args) > 0 && argVerifyManifest != "" {
			return fmt.Errorf(`cannot provide manifest as positional argument and via --manifest; remove --manifest`)
		}
		if len(args) > 1 && argVerifyDirectory == "" {
			argVerifyDirectory = args[1]
		}
		if len(args) > 2 {
			return fmt.Errorf(`expected at most two positional arguments {manifest, directory}, got %d`, len(args))
		}

		// create global VerifyCommand instance
		verifyCommand = new(VerifyCommand)
		verifyCommand.Manifest = argVerifyManifest
		verifyCommand.Directory = argVerifyDirectory
		verifyCommand.ConfigOutput = argConfigOutput
		verifyCommand.JSONOutput = argJSONOutput

		// handle environment variables
		envJSON, errJSON := EnvToBool(`VERISUM_JSON`)
		if errJSON == nil {
			verifyCommand.JSONOutput = envJSON
			argJSONOutput = envJSON
		}

		// default values
		if verifyCommand.Manifest == "" {
			verifyCommand.Manifest = internals.ManifestName
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, verifyCommand}
		exitCode, cmdError = verifyCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	f := verifyCmd.PersistentFlags()

	f.StringVar(&argVerifyManifest, `manifest`, "", `path of the manifest file to verify against`)
	f.StringVarP(&argVerifyDirectory, `directory`, `d`, "", `directory tree to verify instead of the recorded one`)
}

// Run executes the CLI command verify on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error).
func (c *VerifyCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	manifest, err := internals.LoadManifest(c.Manifest)
	if err != nil {
		return 2, err
	}

	targetDir := c.Directory
	if targetDir == "" {
		targetDir = manifest.Metadata.Directory
	}

	verifier := &internals.Verifier{Manifest: manifest, TargetDir: targetDir}
	if !c.JSONOutput {
		log.Printfln(`Verifying files in: %s`, targetDir)
		log.Printfln(`Using algorithm: %s`, manifest.Metadata.Algorithm)
		verifier.Progress = func(result internals.EntryResult) {
			switch result.Outcome {
			case internals.Matched:
				w.Printfln(`  ok: %s`, result.Path)
			case internals.Mismatched:
				if result.Err != nil {
					w.Printfln(`  FAILED: %s: %s`, result.Path, result.Err)
				} else {
					w.Printfln(`  FAILED: %s`, result.Path)
					w.Printfln(`    expected: %s`, result.Expected)
					w.Printfln(`    actual:   %s`, result.Actual)
				}
			case internals.Missing:
				w.Printfln(`  missing: %s`, result.Path)
			}
		}
	}

	report, err := verifier.Verify()
	if err != nil {
		return 2, err
	}

	if c.JSONOutput {
		data := VerifyJSONResult{
			Total:   report.Total,
			Passed:  report.Passed,
			Failed:  report.Failed,
			Missing: report.Missing,
			Verdict: report.Verdict(),
		}
		jsonRepr, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
	} else {
		w.Printfln(`Total:   %d`, report.Total)
		w.Printfln(`Passed:  %d`, report.Passed)
		w.Printfln(`Failed:  %d`, report.Failed)
		w.Printfln(`Missing: %d`, report.Missing)
		w.Printfln(`Verdict: %s`, report.Verdict())
	}

	if !report.Intact() {
		return 1, nil
	}
	return 0, nil
}
