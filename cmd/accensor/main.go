// Command accensor censors stdin against a dictionary of patterns loaded
// from a file, one pattern per line, writing the censored text to
// stdout. It is a thin demonstration of the ahocorasick.Censor API, not
// part of the library's contractual surface.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/solstice-go/ahocorasick"
	"github.com/solstice-go/ahocorasick/acerrors"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("accensor", flag.ContinueOnError)
	dictPath := fs.String("dict", "", "path to a newline-delimited pattern dictionary (required)")
	cfgPath := fs.String("config", "", "path to a TOML config file overriding replacement/ignore-chars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dictPath == "" {
		return fmt.Errorf("%w: -dict is required", acerrors.ErrInvalidConfig)
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}

	words, err := readDictionary(*dictPath)
	if err != nil {
		return err
	}

	censor := ahocorasick.NewCensor()
	censor.Build(words)

	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	ignore := cfg.ignoreSet()
	var censored string
	if len(ignore) == 0 {
		censored = censor.Filter(string(text), cfg.Replacement)
	} else {
		censored = censor.FilterIgnore(string(text), cfg.Replacement, ignore)
	}

	_, err = fmt.Fprint(out, censored)
	return err
}

func readDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", acerrors.ErrDictionaryUnreadable, path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", acerrors.ErrDictionaryUnreadable, path, err)
	}
	return words, nil
}
