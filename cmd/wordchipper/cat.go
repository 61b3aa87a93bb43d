package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/wordchipper"
	"github.com/agentstation/wordchipper/build"
)

func newCatCmd() *cobra.Command {
	var (
		model      string
		doEncode   bool
		doDecode   bool
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "cat",
		Short: "Stream text through a pretrained tokenizer",
		Long: `cat streams input through a named pretrained tokenizer.

In --encode mode, each input line (terminator included) is tokenized and
the resulting token ids are written space-separated, one line per input
line. In --decode mode, each input line is parsed as a space-separated
list of decimal token ids and the decoded bytes are written continuously.`,
		Example: `  # Encode text
  echo "hello world" | wordchipper cat --model cl100k_base --encode

  # Decode token ids
  echo "15339 1917" | wordchipper cat --model cl100k_base --decode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if doEncode == doDecode {
				return fmt.Errorf("cat: exactly one of --encode or --decode is required")
			}
			if model == "" {
				return fmt.Errorf("cat: --model is required")
			}

			in, closeIn, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := openOutput(outputPath)
			if err != nil {
				return err
			}
			defer closeOut()

			tok, err := build.FromName(model, newDiskCacheLoader(), wordchipper.DefaultTokenizerOptions())
			if err != nil {
				return fmt.Errorf("cat: load model %q: %w", model, err)
			}

			if doEncode {
				return runCatEncode(tok, in, out)
			}
			return runCatDecode(tok, in, out)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "pretrained model name, e.g. cl100k_base")
	cmd.Flags().BoolVar(&doEncode, "encode", false, "encode text to token ids")
	cmd.Flags().BoolVar(&doDecode, "decode", false, "decode token ids to bytes")
	cmd.Flags().StringVar(&inputPath, "input", "-", "input file, or - for stdin")
	cmd.Flags().StringVar(&outputPath, "output", "-", "output file, or - for stdout")
	return cmd
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cat: open input %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cat: open output %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func runCatEncode(tok *wordchipper.Tokenizer[uint32], in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			tokens, encErr := tok.Encode(line)
			if encErr != nil {
				return fmt.Errorf("cat: encode: %w", encErr)
			}
			ids := make([]string, len(tokens))
			for i, t := range tokens {
				ids[i] = strconv.FormatUint(uint64(t), 10)
			}
			if _, werr := fmt.Fprintln(writer, strings.Join(ids, " ")); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("cat: read input: %w", err)
		}
	}
}

func runCatDecode(tok *wordchipper.Tokenizer[uint32], in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		tokens := make([]uint32, 0, len(fields))
		for _, f := range fields {
			id, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return fmt.Errorf("cat: parse token id %q: %w", f, err)
			}
			tokens = append(tokens, uint32(id))
		}
		res, err := tok.Decode(tokens)
		if err != nil {
			return fmt.Errorf("cat: decode: %w", err)
		}
		if _, werr := writer.Write(res.Value); werr != nil {
			return werr
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cat: read input: %w", err)
	}
	return nil
}
