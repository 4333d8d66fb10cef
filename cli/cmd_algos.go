package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/verisum/verisum/internals"
)

// AlgosJSONResult is a struct used to serialize JSON output
type AlgosJSONResult struct {
	Default        string   `json:"default"`
	SupportedAlgos []string `json:"supported-hash-algorithms"`
}

// algosCmd represents the algos command
var algosCmd = &cobra.Command{
	Use:   "algos",
	Short: "List the supported hash algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = runAlgos(w, log)
	},
}

func init() {
	rootCmd.AddCommand(algosCmd)
}

func runAlgos(w, log Output) (int, error) {
	supported := internals.SupportedHashAlgorithms()

	if argJSONOutput {
		data := AlgosJSONResult{
			Default:        string(internals.DefaultHash),
			SupportedAlgos: supported,
		}
		jsonRepr, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
		return 0, nil
	}

	for _, name := range supported {
		algo, err := internals.HashAlgorithmFromString(name)
		if err != nil {
			return 6, err
		}
		suffix := ``
		if algo == internals.DefaultHash {
			suffix = ` (default)`
		}
		w.Printfln(`%-10s %3d bits%s`, name, 8*algo.DigestSize(), suffix)
	}
	return 0, nil
}
