package pump

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"logsink/internal/parser"
	"logsink/internal/sink"
)

// progressEvery controls how often the pump reports throughput while
// draining a long input.
const progressEvery = 10_000

// Pump drains text lines from a reader into a sink. It is intentionally
// decoupled from concrete parser / sink implementations so those components
// can evolve independently (and so tests can inject fakes).
type Pump struct {
	sink   sink.Sink
	parser *parser.Parser
}

// New constructs a Pump emitting to sk.
//
// The caller is responsible for creating the desired Sink implementation so
// different configurations (e.g. a mock sink for tests) can be injected as
// needed.
func New(sk sink.Sink, pr *parser.Parser) *Pump {
	return &Pump{sink: sk, parser: pr}
}

// Run reads r line by line until EOF or context cancellation, emitting one
// event per line. It returns the number of events emitted. A failing Emit
// aborts the run and the error propagates; the pump performs no retry.
func (p *Pump) Run(ctx context.Context, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	// Generous line cap; default 64KiB loses long application log lines.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	count := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return count, ctx.Err()
		default:
		}

		evt := p.parser.Parse(sc.Text())
		if err := p.sink.Emit(evt); err != nil {
			return count, fmt.Errorf("emit line %d: %w", count+1, err)
		}
		count++

		if count%progressEvery == 0 {
			logrus.Debugf("pump: %d events emitted", count)
		}
	}
	if err := sc.Err(); err != nil {
		return count, fmt.Errorf("read input: %w", err)
	}
	return count, nil
}
