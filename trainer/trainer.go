// Package trainer runs the surname classification training loop and
// inference over a trained model.
package trainer

import (
	"fmt"
	"log"

	"github.com/onoma-ml/onoma/autodiff"
	"github.com/onoma-ml/onoma/names"
	"github.com/onoma-ml/onoma/nn"
	"github.com/onoma-ml/onoma/optim"
)

// Config configures a training run.
type Config struct {
	// Steps is the number of single-example training steps.
	Steps int

	// LearningRate for the SGD update.
	LearningRate float32

	// ReportEvery logs running loss every N steps. 0 disables reporting.
	ReportEvery int
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("trainer: steps must be > 0, got %d", c.Steps)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("trainer: learning rate must be > 0, got %v", c.LearningRate)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("trainer: report interval must be >= 0, got %d", c.ReportEvery)
	}
	return nil
}

// LossSample is one recorded point of the training loss curve.
type LossSample struct {
	Step int
	Loss float32
}

// Train runs cfg.Steps single-example steps: draw an example from sampler,
// run the word through the model, compute MSE against the category one-hot,
// backpropagate and apply SGD. Returns the loss at every step, in order.
//
// The backend must be the same autodiff backend the model's parameters were
// created on, otherwise gradients cannot reach them.
func Train[B autodiff.BackwardCapable](
	model *nn.CharRNN[B],
	registry *names.Registry,
	sampler *names.Sampler,
	backend B,
	cfg Config,
) ([]LossSample, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sgd, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LearningRate})
	if err != nil {
		return nil, err
	}

	tape := backend.GetTape()
	history := make([]LossSample, 0, cfg.Steps)
	var running float32

	for step := 1; step <= cfg.Steps; step++ {
		example := sampler.Sample()

		seq, err := names.WordToTensor(registry.Alphabet(), example.Word, backend)
		if err != nil {
			return history, fmt.Errorf("trainer: step %d: %w", step, err)
		}
		target, err := names.CategoryToTensor(registry, example.Category, backend)
		if err != nil {
			return history, fmt.Errorf("trainer: step %d: %w", step, err)
		}

		tape.Clear()
		tape.StartRecording()

		output, err := model.Forward(seq)
		if err != nil {
			tape.StopRecording()
			return history, fmt.Errorf("trainer: step %d: %w", step, err)
		}
		loss := output.MSELoss(target)

		tape.StopRecording()

		grads, err := autodiff.Backward(loss)
		if err != nil {
			return history, fmt.Errorf("trainer: step %d: %w", step, err)
		}
		if err := sgd.Step(grads); err != nil {
			return history, fmt.Errorf("trainer: step %d: %w", step, err)
		}

		lossVal := loss.Data()[0]
		history = append(history, LossSample{Step: step, Loss: lossVal})
		running += lossVal

		if cfg.ReportEvery > 0 && step%cfg.ReportEvery == 0 {
			log.Printf("step=%d/%d loss=%.4f avg_loss=%.4f word=%q category=%s",
				step, cfg.Steps, lossVal, running/float32(cfg.ReportEvery), example.Word, example.Category)
			running = 0
		}
	}

	return history, nil
}

// Prediction is the result of classifying one word.
type Prediction struct {
	// Category is the name of the most probable class.
	Category string

	// Probabilities holds one probability per category, in corpus order.
	Probabilities []float32
}

// Predict classifies a word with a trained model. The tape is not recording
// during inference, so no operations accumulate.
func Predict[B autodiff.BackwardCapable](
	model *nn.CharRNN[B],
	registry *names.Registry,
	word string,
	backend B,
) (Prediction, error) {
	seq, err := names.WordToTensor(registry.Alphabet(), word, backend)
	if err != nil {
		return Prediction{}, err
	}

	output, err := model.Forward(seq)
	if err != nil {
		return Prediction{}, err
	}

	probs := make([]float32, output.NumElements())
	copy(probs, output.Data())

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return Prediction{
		Category:      registry.CategoryName(best),
		Probabilities: probs,
	}, nil
}
