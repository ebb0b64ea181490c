// Command learn runs one simulation's simulated-annealing search and
// prints the best grammar it finds.
//
// Usage: learn <simulation-directory>
//
// simulation-directory must hold a config.json (the UPPERCASE_NAME
// option map), the feature-table and constraint-set files it names,
// and a corpus.json listing the surface forms to fit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/otlearn/otlearn"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: learn <simulation-directory>")
		os.Exit(2)
	}

	if err := run(args[0]); err != nil {
		glog.Errorf("simulation failed: %v", err)
		os.Exit(1)
	}
}

type corpusFile struct {
	Words []string `json:"words"`
}

func run(dir string) error {
	cfg, err := otlearn.LoadConfig(dir + "/config.json")
	if err != nil {
		return err
	}

	table, err := otlearn.LoadFeatureTable(dir + "/" + cfg.FeatureTableFile)
	if err != nil {
		return err
	}

	cs, err := otlearn.LoadConstraintSet(dir+"/"+cfg.ConstraintSetFile, table)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(dir + "/corpus.json")
	if err != nil {
		return &otlearn.ConfigurationError{Key: dir + "/corpus.json", Reason: err.Error()}
	}
	var cf corpusFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return &otlearn.ConfigurationError{Key: dir + "/corpus.json", Reason: err.Error()}
	}
	corpus := otlearn.NewCorpus(cf.Words, cfg.CorpusDuplicationFactor)

	var words []otlearn.Emission
	for _, w := range cf.Words {
		words = append(words, otlearn.Emission(otlearn.SplitSymbols(table, w)))
	}
	hmm := otlearn.CreateFromList(words)
	lexicon := otlearn.NewLexicon(hmm, maxObservedLength(cf.Words)+2)
	grammar := otlearn.NewGrammar(cs, lexicon)

	hyp := otlearn.NewHypothesis(grammar, corpus, table, cfg)

	r := otlearn.NewRandom(cfg)
	notifier := otlearn.NewNotifier(os.Getenv("OTLEARN_WEBHOOK_URL"))
	annealer := otlearn.NewAnnealer(cfg, table, r, notifier)

	glog.Infof("%s: starting search over %d corpus forms (%d after duplication)",
		dir, len(corpus.Forms), corpus.Total())

	best := annealer.Run(hyp)

	fmt.Printf("energy: %.4f\n", best.Energy(annealer.Caches))
	fmt.Printf("constraints: %s\n", best.Grammar.Constraints.String())
	fmt.Printf("lexicon encoding length: %d\n", best.Grammar.Lexicon.EncodingLength(table))
	return nil
}

func maxObservedLength(words []string) int {
	max := 0
	for _, w := range words {
		if len(w) > max {
			max = len(w)
		}
	}
	return max
}
