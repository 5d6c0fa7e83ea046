package cmd

import (
	"github.com/clems4ever/ccorpus/cleaner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cleanOpts cleaner.Options

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Filter and rewrite the C files of a directory in place",
	Long: `Every *.c file of the directory is read and removed. Files that survive the
feature blacklist are rewritten into the minimal dialect and written back
under a fresh name, printed as "<seq>: <name>". Rejected files are gone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cleanOpts
		opts.Progress = cmd.OutOrStdout()
		opts.Logger = logger

		sum, err := cleaner.New(opts).Run()
		if err != nil {
			return err
		}
		for marker, n := range sum.ByMarker {
			logger.Debug("rejections", zap.String("marker", marker), zap.Int("files", n))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVarP(&cleanOpts.Dir, "dir", "d", ".", "Directory holding the corpus")
	cleanCmd.Flags().StringVar(&cleanOpts.Ext, "ext", cleaner.DefaultExt, "Source file extension")
	cleanCmd.Flags().StringVar(&cleanOpts.Prefix, "prefix", cleaner.DefaultPrefix, "Output name prefix")
	cleanCmd.Flags().BoolVar(&cleanOpts.DeleteFirst, "delete-first", false, "Remove each input before deciding whether to keep it")
}
