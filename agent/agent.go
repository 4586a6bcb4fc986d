// Package agent implements the interactive analyst behind `hdx assist`: a
// Gemini chat seeded with the holdings summary and asset table, answering
// questions about the holdings composition.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `You are an equity analyst assistant. The user maintains
a table of stock holding periods (Chinese A-share codes with .SH/.SZ
suffixes). Below is the current summary and asset list in markdown. Answer
questions about composition, industries and holding periods from this data
only; say so when the data cannot answer.`

// Analyst is a chat session about one holdings table.
type Analyst struct {
	w       io.Writer
	r       *bufio.Reader
	context string // markdown rendition of the holdings, given as system instruction
	chat    *genai.Chat
}

// New creates an Analyst. 'context' is the markdown holdings material the
// analyst reasons over; 'w' and 'r' carry the interactive session.
func New(w io.Writer, r io.Reader, context string) *Analyst {
	return &Analyst{
		w:       w,
		r:       bufio.NewReader(r),
		context: context,
	}
}

// Start creates the underlying Gemini chat.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: systemPrompt},
			{Text: a.context},
		}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// asked before reading from the user.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Ask about the holdings. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
