package main

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	v1 "github.com/verisum/verisum/v1"
)

// VersionJSONResult is a struct used to serialize JSON output
type VersionJSONResult struct {
	Version string `json:"version"`
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of this tool",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode, cmdError = runVersion(w, log)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(w, log Output) (int, error) {
	versionString := fmt.Sprintf(`%d.%d.%d`, v1.VERSION_MAJOR, v1.VERSION_MINOR, v1.VERSION_PATCH)

	if argJSONOutput {
		jsonRepr, err := json.Marshal(&VersionJSONResult{Version: versionString})
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
		return 0, nil
	}

	w.Println(versionString)
	return 0, nil
}
