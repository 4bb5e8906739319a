package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ajwerner/avltree"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Print modes understood by a Scenario.
const (
	printInOrder  = "inorder"
	printPreOrder = "preorder"
	printTree     = "tree"
)

// Scenario is a sequence of insertions followed by a sequence of deletions,
// and the views of the resulting tree to print.
type Scenario struct {
	Insert []int    `yaml:"insert"`
	Delete []int    `yaml:"delete"`
	Print  []string `yaml:"print"`
}

// defaultScenario exercises every deletion case: two children, a leaf, a
// single right child and finally a leaf whose removal forces a rotation.
var defaultScenario = Scenario{
	Insert: []int{33, 13, 11, 53, 61, 21, 8, 9},
	Delete: []int{13, 11, 53, 61},
	Print:  []string{printInOrder, printPreOrder, printTree},
}

// LoadScenario reads a scenario from a YAML file. An empty path yields the
// default scenario.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		s := defaultScenario
		return &s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing scenario %s", path)
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return &s, nil
}

// Validate checks that the scenario does something and only asks for known
// print modes.
func (s *Scenario) Validate() error {
	if len(s.Insert) == 0 && len(s.Delete) == 0 {
		return errors.New("no keys to insert or delete")
	}
	for _, p := range s.Print {
		switch p {
		case printInOrder, printPreOrder, printTree:
		default:
			return errors.Newf("unknown print mode %q", p)
		}
	}
	return nil
}

// Apply runs the scenario's insertions and deletions against tree.
func (s *Scenario) Apply(tree *avltree.Tree[int], log logrus.FieldLogger) {
	for _, k := range s.Insert {
		added := tree.Insert(k)
		log.WithFields(logrus.Fields{
			"key":    k,
			"added":  added,
			"len":    tree.Len(),
			"height": tree.Height(),
		}).Debug("insert")
	}
	for _, k := range s.Delete {
		removed := tree.Delete(k)
		log.WithFields(logrus.Fields{
			"key":     k,
			"removed": removed,
			"len":     tree.Len(),
			"height":  tree.Height(),
		}).Debug("delete")
	}
}

// Report writes the requested views of tree to w, followed by a summary.
func (s *Scenario) Report(w io.Writer, tree *avltree.Tree[int]) error {
	for _, p := range s.Print {
		var err error
		switch p {
		case printInOrder:
			fmt.Fprintln(w, "in-order:")
			err = tree.PrintInOrder(w)
		case printPreOrder:
			fmt.Fprintln(w, "pre-order:")
			err = tree.PrintPreOrder(w)
		case printTree:
			fmt.Fprintln(w, "tree:")
			_, err = tree.Print(w)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "len=%d height=%d leaves=%d\n", tree.Len(), tree.Height(), tree.Leaves())
	return errors.Wrap(err, "report")
}
