// Command onoma trains a character-level recurrent classifier on a small
// built-in surname corpus and prints predictions for a few held-out names.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/onoma-ml/onoma/autodiff"
	"github.com/onoma-ml/onoma/backend/cpu"
	"github.com/onoma-ml/onoma/names"
	"github.com/onoma-ml/onoma/nn"
	"github.com/onoma-ml/onoma/trainer"
)

// A tiny slice of the classic surname dataset, enough to watch the loss
// fall and the predictions separate.
var corpus = names.Corpus{
	{Name: "English", Words: []string{
		"Smith", "Jones", "Taylor", "Brown", "Wilson", "Evans", "Walker",
		"Wright", "Robinson", "Thompson", "White", "Hughes", "Edwards",
	}},
	{Name: "Russian", Words: []string{
		"Ivanov", "Smirnov", "Kuznetsov", "Popov", "Vasiliev", "Petrov",
		"Sokolov", "Mikhailov", "Fedorov", "Morozov", "Volkov", "Alekseev",
	}},
	{Name: "Japanese", Words: []string{
		"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito",
		"Yamamoto", "Nakamura", "Kobayashi", "Saito", "Kato", "Yoshida",
	}},
	{Name: "Italian", Words: []string{
		"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano",
		"Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo",
	}},
}

func main() {
	steps := flag.Int("steps", 20000, "number of training steps")
	lr := flag.Float64("lr", 0.005, "learning rate")
	hidden := flag.Int("hidden", nn.DefaultHiddenSize, "hidden state size")
	seed := flag.Int64("seed", 42, "seed for weight init and sampling")
	reportEvery := flag.Int("report-every", 1000, "log loss every N steps (0 disables)")
	flag.Parse()

	if err := run(*steps, float32(*lr), *hidden, *seed, *reportEvery, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(steps int, lr float32, hidden int, seed int64, reportEvery int, words []string) error {
	registry, err := names.NewRegistry(corpus)
	if err != nil {
		return err
	}

	backend := autodiff.New(cpu.New())
	rng := rand.New(rand.NewSource(seed))

	model, err := nn.NewCharRNN(registry.Alphabet().Size(), hidden, registry.NumCategories(), rng, backend)
	if err != nil {
		return err
	}

	log.Printf("training backend=%s alphabet=%d hidden=%d categories=%d",
		backend.Name(), registry.Alphabet().Size(), hidden, registry.NumCategories())

	sampler := names.NewSampler(registry.Corpus(), seed)
	history, err := trainer.Train(model, registry, sampler, backend, trainer.Config{
		Steps:        steps,
		LearningRate: lr,
		ReportEvery:  reportEvery,
	})
	if err != nil {
		return err
	}
	log.Printf("training done: final loss=%.4f", history[len(history)-1].Loss)

	if len(words) == 0 {
		words = []string{"Dostoevsky", "Fletcher", "Nakagawa", "Ferri"}
	}
	for _, word := range words {
		pred, err := trainer.Predict(model, registry, word, backend)
		if err != nil {
			fmt.Fprintf(os.Stderr, "predict %q: %v\n", word, err)
			continue
		}
		fmt.Printf("%-12s -> %-10s", word, pred.Category)
		for i, p := range pred.Probabilities {
			fmt.Printf("  %s=%.3f", registry.CategoryName(i), p)
		}
		fmt.Println()
	}
	return nil
}
