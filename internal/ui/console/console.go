// Package console runs a session over a line-oriented reader and writer.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/palemoky/inbetween/internal/logger"
	"github.com/palemoky/inbetween/internal/session"
)

// Run feeds every line of in to s until the session is done or in is
// exhausted. End of input is a normal shutdown and returns nil.
func Run(in io.Reader, out io.Writer, s *session.Session) error {
	scanner := bufio.NewScanner(in)

	write(out, s.Start())
	for scanner.Scan() {
		reply := s.Handle(scanner.Text())
		write(out, reply)
		if reply.Done {
			return nil
		}
	}

	// 输入流关闭：结束会话
	fmt.Fprintln(out)
	write(out, s.Close())
	if err := scanner.Err(); err != nil {
		logger.LogError("[%s] reading input: %v", s.ID(), err)
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func write(out io.Writer, r session.Reply) {
	if r.Output != "" {
		fmt.Fprintln(out, r.Output)
	}
	if r.Prompt != "" {
		fmt.Fprint(out, r.Prompt)
	}
}
