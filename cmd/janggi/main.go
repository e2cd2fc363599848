// Command janggi replays moves read from stdin, one "from to" pair per line
// (e.g. "c7 c6"), and prints whether each was accepted.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"janggi/internal/janggi"
	"janggi/internal/notation"
)

func main() {
	position := flag.String("position", "", "start from this encoded position instead of the standard layout")
	showBoard := flag.Bool("board", true, "print the board after the last move")
	flag.Parse()

	g := janggi.NewGame()
	if *position != "" {
		var err error
		g, err = janggi.DecodePosition(*position)
		if err != nil {
			log.Fatalf("bad position: %v", err)
		}
	}

	sc := bufio.NewScanner(os.Stdin)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		mv, err := notation.ParseMove(text)
		if err != nil {
			log.Printf("line %d: %v", line, err)
			continue
		}
		if err := g.SubmitMove(mv.From, mv.To); err != nil {
			fmt.Printf("%s: false (%v)\n", notation.FormatMove(mv), err)
			continue
		}
		fmt.Printf("%s: true", notation.FormatMove(mv))
		if g.InCheck(g.Turn()) {
			fmt.Print(" check")
		}
		fmt.Println()
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	if *showBoard {
		fmt.Print(g.Snapshot())
	}
	fmt.Println("state:", g.State())
	fmt.Println("turn:", g.Turn())
	fmt.Println("position:", g.Encode())
}
