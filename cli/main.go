package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verisum",
	Short: "Snapshot and verify directory checksums",
	Long: `verisum computes content hashes for all files in a directory tree and
stores them in a JSON manifest. Later runs re-hash the tree and reconcile it
against the manifest, classifying every recorded file as matched, mismatched
or missing, with an overall Intact/Compromised verdict. For example:

	verisum create /srv/data
	verisum verify checksums.json
`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// CLI response for errors
type errorResponse struct {
	ErrorMessage string `json:"error"`
}

func (e *errorResponse) String() string {
	return `cli: error: ` + e.ErrorMessage
}

func (e *errorResponse) JSON() string {
	jsonBytes, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "JSON marshalling error: %s", err)
		return ""
	}
	return string(jsonBytes)
}

func init() {
	f := rootCmd.PersistentFlags()
	f.BoolVar(&argConfigOutput, `config`, false, `only print the configuration and terminate`)
	f.BoolVar(&argJSONOutput, `json`, false, `return output as JSON, not as plain text`)
	f.StringVar(&argDefaultsFile, `defaults`, "", `path to a YAML file with CLI defaults`)
}

func cli() int {
	w = &plainOutput{device: os.Stdout}
	log = &plainOutput{device: os.Stderr}

	if err := rootCmd.Execute(); err != nil {
		cmdError = err
		if exitCode == 0 {
			exitCode = 1
		}
	}

	if cmdError != nil {
		resp := errorResponse{ErrorMessage: cmdError.Error()}
		if argJSONOutput {
			log.Println(resp.JSON())
		} else {
			log.Println(resp.String())
		}
	}

	return exitCode
}

func main() {
	os.Exit(cli())
}
