// Command avldemo drives an AVL tree of integers through a scenario of
// insertions and deletions and prints the result.
package main

import (
	"math/rand"
	"os"

	"github.com/ajwerner/avltree"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Error("avldemo failed")
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	var verbose bool

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Apply a scenario of insertions and deletions and print the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("scenario")
			check, _ := cmd.Flags().GetBool("check")
			s, err := LoadScenario(path)
			if err != nil {
				return err
			}
			tree := avltree.NewOrdered[int]()
			s.Apply(tree, log)
			if check {
				if err := tree.Check(); err != nil {
					return errors.Wrap(err, "invariant check")
				}
				log.WithField("len", tree.Len()).Info("invariants hold")
			}
			return s.Report(cmd.OutOrStdout(), tree)
		},
	}
	cmdRun.Flags().String("scenario", "", "YAML scenario file (default: built-in scenario)")
	cmdRun.Flags().Bool("check", false, "verify tree invariants after applying the scenario")

	var cmdRandom = &cobra.Command{
		Use:   "random",
		Short: "Insert a random permutation, delete half of it and verify the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			seed, _ := cmd.Flags().GetInt64("seed")
			return runRandom(log, n, seed)
		},
	}
	cmdRandom.Flags().Int("n", 1000, "number of keys")
	cmdRandom.Flags().Int64("seed", 1, "random seed")

	var rootCmd = &cobra.Command{
		Use:           "avldemo",
		Short:         "Exercise an AVL tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every operation")
	rootCmd.AddCommand(cmdRun, cmdRandom)
	return rootCmd
}

func runRandom(log logrus.FieldLogger, n int, seed int64) error {
	if n < 0 {
		return errors.Newf("n must not be negative, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	tree := avltree.NewOrdered[int]()
	for _, k := range rng.Perm(n) {
		tree.Insert(k)
	}
	log.WithFields(logrus.Fields{"len": tree.Len(), "height": tree.Height()}).Info("inserted")
	for _, k := range rng.Perm(n)[:n/2] {
		tree.Delete(k)
	}
	if err := tree.Check(); err != nil {
		return errors.Wrap(err, "invariant check")
	}
	log.WithFields(logrus.Fields{
		"len":    tree.Len(),
		"height": tree.Height(),
		"leaves": tree.Leaves(),
	}).Info("deleted half, invariants hold")
	return nil
}
