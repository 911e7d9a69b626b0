package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/answerit"
	"github.com/poiesic/answerit/core"
	"github.com/poiesic/answerit/ingestion"
)

var samplePairs = []core.QAPair{
	{Question: "What is the capital of France?", Answer: "Paris"},
	{Question: "What is the capital of Spain?", Answer: "Madrid"},
	{Question: "What is the capital of Japan?", Answer: "Tokyo"},
	{Question: "Who wrote Hamlet?", Answer: "William Shakespeare"},
	{Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci"},
	{Question: "Who discovered penicillin?", Answer: "Alexander Fleming"},
	{Question: "What year did World War II end?", Answer: "1945"},
	{Question: "What year did the Apollo 11 mission land on the moon?", Answer: "1969"},
	{Question: "Which planet is known as the red planet?", Answer: "Mars"},
	{Question: "Which planet is the largest in the solar system?", Answer: "Jupiter"},
	{Question: "What is the chemical symbol for gold?", Answer: "Au"},
	{Question: "What is the chemical symbol for oxygen?", Answer: "O"},
	{Question: "How many continents are there?", Answer: "Seven"},
	{Question: "How many bones are in the adult human body?", Answer: "206"},
	{Question: "What is the longest river in the world?", Answer: "The Nile"},
	{Question: "What is the tallest mountain on Earth?", Answer: "Mount Everest"},
	{Question: "True or false: sound travels faster than light.", Answer: "False"},
	{Question: "True or false: water boils at 100 degrees Celsius at sea level.", Answer: "True"},
	{Question: "The powerhouse of the cell is the _____.", Answer: "mitochondria"},
	{Question: "Which of the following is a noble gas: nitrogen, helium, or oxygen?", Answer: "Helium"},
	{Question: "What is a deadlock in concurrent programming?", Answer: "A state where two or more processes each wait for a resource the other holds, so none can proceed."},
	{Question: "What does HTTP stand for?", Answer: "HyperText Transfer Protocol"},
	{Question: "What does CPU stand for?", Answer: "Central Processing Unit"},
	{Question: "Explain why the sky appears blue during the day.", Answer: "Air molecules scatter shorter blue wavelengths of sunlight more strongly than longer wavelengths, a process called Rayleigh scattering."},
	{Question: "Describe how photosynthesis converts sunlight into chemical energy.", Answer: "Chlorophyll absorbs light energy, which drives the conversion of carbon dioxide and water into glucose and oxygen."},
}

var seedFileName = flag.String("src", "", "pair file of seed data")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	db, err := answerit.NewDatabase("./answers_db", answerit.WithoutAI())
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pairs := samplePairs
	if seedFileName != nil && *seedFileName != "" {
		pairs, err = ingestion.LoadPairsFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	count, err := db.ImportPairs(context.Background(), pairs...)
	if err != nil {
		panic(err)
	}
	slog.Info("seeded database", "pairs", count)
}
