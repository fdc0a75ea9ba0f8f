package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/golang/glog"

	"github.com/trit-lang/unshackled/unshackled"
)

var seed = flag.Int64("seed", 0, "seed for the startup growth-parameter RNG (default: wall-clock nanoseconds)")

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Errorf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := readProgram(flag.Arg(0))
	if err != nil {
		return err
	}

	tree := unshackled.NewMemoryTree()
	initialValues, err := unshackled.NewLoader(tree).Load(data)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(rngSeed()))
	params := unshackled.NewRandomParams(rng)

	vm := unshackled.New(tree, initialValues, params, os.Stdin, os.Stdout)
	return vm.Run()
}

func readProgram(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading program %q: %w", path, err)
	}
	return data, nil
}

func rngSeed() int64 {
	if *seed != 0 {
		return *seed
	}
	return unshackled.NewSeededRand().Int63()
}
