// Command regression trains a small perceptron network on a one-dimensional
// regression problem and prints a few predictions.
//
// Without -data it learns y = 2x from x = 1..4. With -data it reads a CSV whose
// last column is the target.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/FlavioCFOliveira/GoPerceptron/internal/activations"
	"github.com/FlavioCFOliveira/GoPerceptron/internal/net"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "regression: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("regression", flag.ContinueOnError)
	fs.SetOutput(stdout)

	hidden := fs.String("hidden", "2", "comma-separated hidden layer sizes (empty for none)")
	hiddenAct := fs.String("hidden-act", "sigmoid", "hidden activation: linear, sigmoid, tanh, relu, leakyrelu")
	outputAct := fs.String("output-act", "linear", "output activation")
	epochs := fs.Int("epochs", 10000, "number of passes over the dataset")
	lr := fs.Float64("lr", 0.01, "learning rate")
	seed := fs.Int64("seed", 0, "weight initialization seed (0 picks one from the clock)")
	data := fs.String("data", "", "CSV dataset; the last column is the target")
	header := fs.Bool("header", false, "the CSV dataset has a header row")
	predict := fs.String("predict", "5,10,525", "comma-separated inputs to predict after training")
	interval := fs.Int("log-interval", 0, "print the epoch loss every n epochs (0 disables)")
	csvLog := fs.String("csv-log", "", "write per-epoch loss to this CSV file")
	summary := fs.Bool("summary", false, "print the network summary before training")
	if err := fs.Parse(args); err != nil {
		return err
	}

	hiddenSizes, err := parseInts(*hidden)
	if err != nil {
		return fmt.Errorf("-hidden: %w", err)
	}
	hAct, err := activations.ByName(*hiddenAct)
	if err != nil {
		return fmt.Errorf("-hidden-act: %w", err)
	}
	oAct, err := activations.ByName(*outputAct)
	if err != nil {
		return fmt.Errorf("-output-act: %w", err)
	}
	queries, err := parseFloats(*predict)
	if err != nil {
		return fmt.Errorf("-predict: %w", err)
	}

	xTrain, yTrain, err := loadDataset(*data, *header)
	if err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	network, err := net.New(net.Config{
		InputCount:       len(xTrain[0]),
		HiddenSizes:      hiddenSizes,
		OutputCount:      len(yTrain[0]),
		HiddenActivation: hAct,
		OutputActivation: oAct,
		LearningRate:     *lr,
		Seed:             *seed,
	})
	if err != nil {
		return err
	}
	if *summary {
		network.Summary(stdout)
	}

	callbacks := []net.Callback{net.Logger{Interval: *interval, Out: stdout}}
	var logger *net.CSVLogger
	if *csvLog != "" {
		logger = net.NewCSVLogger(*csvLog, false)
		callbacks = append(callbacks, logger)
	}

	fmt.Fprintln(stdout, "Training...")
	if err := network.Fit(xTrain, yTrain, *epochs, callbacks...); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Done.")
	if logger != nil && logger.Err() != nil {
		return logger.Err()
	}

	mse, err := network.Evaluate(xTrain, yTrain)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "training mse=%.6f\n", mse)

	if network.InSize() != 1 {
		return nil
	}
	for _, x := range queries {
		pred, err := network.Predict([]float64{x})
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "for x=%g predict y=%g\n", x, pred[0])
	}
	return nil
}

// loadDataset returns the y = 2x samples when path is empty.
func loadDataset(path string, header bool) ([][]float64, [][]float64, error) {
	if path == "" {
		return [][]float64{{1}, {2}, {3}, {4}}, [][]float64{{2}, {4}, {6}, {8}}, nil
	}

	ds, err := net.LoadCSV(path, []int{-1}, header)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds.Samples, ds.Labels, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range splitList(s) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range splitList(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			out = append(out, field)
		}
	}
	return out
}
