// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/match"
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	db, err := answerit.NewDatabase("./answers_db", answerit.WithoutAI())
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()
	query := "What is the capital of France?"
	if len(os.Args) > 1 {
		query = strings.Join(os.Args[1:], " ")
	}

	result, err := db.Ask(ctx, query, match.DefaultOptions())
	if err != nil {
		panic(err)
	}

	if !result.Success {
		fmt.Printf("No answer: %s\n", result.Message)
		return
	}

	m := result.Match
	fmt.Printf("%s\n(%s, tier %d, confidence %.3f, %v)\n",
		m.Document.Answer, m.Type, result.Tier, m.Confidence, result.Elapsed)
}
