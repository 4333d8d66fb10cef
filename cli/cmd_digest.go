package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/verisum/verisum/internals"
)

// DigestCommand defines the CLI command parameters
type DigestCommand struct {
	File          string `json:"file"`
	HashAlgorithm string `json:"hash-algorithm"`
	Compare       string `json:"compare"`
	ConfigOutput  bool   `json:"config"`
	JSONOutput    bool   `json:"json"`
}

// DigestJSONResult is a struct used to serialize JSON output
type DigestJSONResult struct {
	File      string `json:"file"`
	Size      int64  `json:"size"`
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
	Match     *bool  `json:"match,omitempty"`
}

var digestCommand *DigestCommand

var argDigestFile string
var argDigestHashAlgorithm string
var argDigestCompare string

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest [file]",
	Short: "Compute the digest of a single file",
	Long: `This command hashes one file and prints its digest, optionally comparing
it against a known digest. For example:

	verisum digest ubuntu.iso --algorithm sha256 --compare 5f6c…
`,
	Args: func(cmd *cobra.Command, args []string) error {
		// validity checks
		if len(args) > 0 && argDigestFile == "" {
			argDigestFile = args[0]
		} else if len(args) == 0 && argDigestFile == "" {
			return fmt.Errorf(`expected one positional argument {file}, got none`)
		}

		// create global DigestCommand instance
		digestCommand = new(DigestCommand)
		digestCommand.File = argDigestFile
		digestCommand.HashAlgorithm = argDigestHashAlgorithm
		digestCommand.Compare = argDigestCompare
		digestCommand.ConfigOutput = argConfigOutput
		digestCommand.JSONOutput = argJSONOutput

		// default values
		if digestCommand.HashAlgorithm == "" {
			digestCommand.HashAlgorithm = EnvOr(`VERISUM_HASH_ALGORITHM`, string(internals.DefaultHash))
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// NOTE global input variables: {w, log, digestCommand}
		exitCode, cmdError = digestCommand.Run(w, log)
		// NOTE global output variables: {exitCode, cmdError}
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
	f := digestCmd.PersistentFlags()

	f.StringVarP(&argDigestHashAlgorithm, `algorithm`, `a`, "", `hash algorithm to use`)
	f.StringVarP(&argDigestCompare, `compare`, `c`, "", `known digest to compare against`)
}

// Run executes the CLI command digest on the given parameter set,
// writes the result to Output w and errors/information messages to log.
// It returns a tuple (exit code, error).
func (c *DigestCommand) Run(w, log Output) (int, error) {
	if c.ConfigOutput {
		b, err := json.Marshal(c)
		if err != nil {
			return 6, fmt.Errorf(configJSONErrMsg, err)
		}
		w.Println(string(b))
		return 0, nil
	}

	algo, err := internals.HashAlgorithmFromString(c.HashAlgorithm)
	if err != nil {
		return 2, err
	}

	info, err := os.Stat(c.File)
	if err != nil {
		return 2, fmt.Errorf(`file not found: %s`, c.File)
	}

	hash := algo.Algorithm()
	if err := hash.ReadFile(c.File); err != nil {
		return 2, err
	}
	digest := hash.HexDigest()

	var match *bool
	if c.Compare != "" {
		m := digest == c.Compare
		match = &m
	}

	if c.JSONOutput {
		data := DigestJSONResult{
			File:      c.File,
			Size:      info.Size(),
			Algorithm: string(algo),
			Digest:    digest,
			Match:     match,
		}
		jsonRepr, err := json.Marshal(&data)
		if err != nil {
			return 6, fmt.Errorf(resultJSONErrMsg, err)
		}
		w.Println(string(jsonRepr))
	} else {
		w.Printfln(`File:      %s`, c.File)
		w.Printfln(`Size:      %d bytes`, info.Size())
		w.Printfln(`Algorithm: %s`, algo)
		w.Printfln(`Digest:    %s`, digest)
		if match != nil {
			if *match {
				w.Println(`Digests match.`)
			} else {
				w.Println(`Digests do NOT match.`)
			}
		}
	}

	if match != nil && !*match {
		return 1, nil
	}
	return 0, nil
}
