package main

import (
	"flag"
	"log"
	"os"

	"quizgame"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose debugging output on stderr")
	flag.Parse()

	if err := quizgame.SetVerbose(*verbose); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer quizgame.SyncLog()

	game := quizgame.NewGameManager(os.Stdin, os.Stdout,
		quizgame.WithColor(quizgame.ColorEnabled(os.Stdout)))
	game.LoadQuestions()

	if err := game.StartGame(); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
