package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"bigtwo/internal/config"
	"bigtwo/internal/domain"
	"bigtwo/internal/engine"
	"bigtwo/internal/profile"
)

const startingChips = 5000

func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml")
		playerName = flag.String("name", "You", "display name at the table")
		nightmare  = flag.Bool("nightmare", false, "the NPCs see your hand and play as a team")
		seed       = flag.Int64("seed", 0, "deterministic shuffle seed (0 = time-based)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *nightmare {
		cfg.Table.Nightmare = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	ctx := context.Background()
	store := openStore(ctx, cfg, logger)

	seats := buildSeats(ctx, store, *playerName)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	g := engine.NewGame(seats, engine.Options{
		BaseBet:     cfg.BaseBetFor(""),
		Nightmare:   cfg.Table.Nightmare,
		HumanSeat:   0,
		Tuning:      cfg.Tuning(),
		Rand:        rng,
		Logger:      logger,
		NPCProfiles: npcProfiles(),
		OnProfilesUpdate: func(updates []engine.Update) {
			if err := store.Apply(ctx, updates); err != nil {
				logger.Error("profile persistence failed", "err", err)
			}
		},
	})

	if cfg.Table.Nightmare {
		fmt.Println(errStyle.Render("nightmare mode: they know your cards, and they cooperate."))
	}

	in := bufio.NewScanner(os.Stdin)
	thinkDelay := time.Duration(cfg.Table.ThinkDelayMS) * time.Millisecond
	for runRound(g, in, thinkDelay) {
	}

	fmt.Println("thanks for playing")
}

// openStore connects to Redis when configured, falling back to the
// in-process store so a bare `bigtwo` always starts.
func openStore(ctx context.Context, cfg config.Config, logger *log.Logger) profile.Store {
	if cfg.Redis.Addr == "" {
		return profile.NewMemoryStore()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-memory profiles", "addr", cfg.Redis.Addr, "err", err)
		return profile.NewMemoryStore()
	}
	logger.Info("profiles backed by redis", "addr", cfg.Redis.Addr)
	return profile.NewRedisStore(rdb)
}

func buildSeats(ctx context.Context, store profile.Store, playerName string) []engine.Seat {
	names := []struct {
		name, avatar string
		isAI         bool
	}{{playerName, "🧑", false}}
	for _, n := range roster {
		names = append(names, struct {
			name, avatar string
			isAI         bool
		}{n.name, n.avatar, true})
	}

	seats := make([]engine.Seat, 0, len(names))
	for _, n := range names {
		p, err := store.Get(ctx, n.name)
		if errors.Is(err, profile.ErrNotFound) {
			p = profile.Profile{Name: n.name, Chips: startingChips}
			_ = store.Put(ctx, p)
		}
		seats = append(seats, engine.Seat{
			Name:   n.name,
			Avatar: n.avatar,
			Chips:  p.Chips,
			IsAI:   n.isAI,
		})
	}
	return seats
}

// runRound plays one full round and reports whether the player wants
// another.
func runRound(g *engine.Game, in *bufio.Scanner, thinkDelay time.Duration) bool {
	g.InitializeGame()
	fmt.Println(renderTable(g, 0))
	printQuotes(g, make([]string, g.PlayerCount()))

	lastQuotes := currentQuotes(g)
	for g.Phase() == engine.PhasePlaying {
		seat := g.Turn()
		if g.SeatInfo(seat).IsAI {
			time.Sleep(thinkDelay)
			before := g.Trick()
			if !g.PlayAITurn() {
				// Only reachable if the engine state is corrupt.
				fmt.Println(errStyle.Render("table stalled: " + g.Message))
				return false
			}
			announceAI(g, seat, before)
			printQuotes(g, lastQuotes)
			lastQuotes = currentQuotes(g)
			continue
		}

		fmt.Println(renderTable(g, seat))
		if !humanTurn(g, in, seat) {
			return false
		}
	}

	fmt.Println(renderResult(g))
	fmt.Println(renderStats(g.History()))
	printQuotes(g, lastQuotes)

	fmt.Print("another round? [Y/n] ")
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return answer == "" || answer == "y" || answer == "yes"
}

// humanTurn reads commands until the seat makes a legal move. Returns
// false when the player quits or stdin closes.
func humanTurn(g *engine.Game, in *bufio.Scanner, seat int) bool {
	for {
		if g.MustLeadOpener() {
			fmt.Println(dimStyle.Render("your lead must include the 3C"))
		}
		fmt.Print("> ")
		if !in.Scan() {
			return false
		}
		fields := strings.Fields(in.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "q", "exit":
			return false
		case "help", "h", "?":
			fmt.Println(dimStyle.Render("cards to play them (e.g. `8H 8S`), `pass`, `hand`, `quit`"))
			continue
		case "hand":
			fmt.Println(handStyle.Render(domain.FormatCards(g.Hand(seat))))
			continue
		case "pass", "p":
			if !g.HandlePass() {
				fmt.Println(errStyle.Render(g.Message))
				continue
			}
			return true
		case "play":
			fields = fields[1:]
		}

		cards, err := parseCards(fields)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			continue
		}
		if !g.ApplyPlay(seat, cards) {
			fmt.Println(errStyle.Render(g.Message))
			continue
		}
		return true
	}
}

func parseCards(fields []string) ([]domain.Card, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards given")
	}
	cards := make([]domain.Card, 0, len(fields))
	for _, f := range fields {
		c, err := domain.ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// announceAI prints what the seat just did, derived from the trick
// transition.
func announceAI(g *engine.Game, seat int, before *domain.Trick) {
	name := g.SeatInfo(seat).Name
	after := g.Trick()
	if after != nil && after.Seat == seat && (before == nil || !sameTrick(before, after)) {
		verb := "plays"
		if after.Combo.CutRank > domain.CutNone {
			verb = "bombs with"
		}
		fmt.Printf("%s %s %s\n", name, verb, trickStyle.Render(domain.FormatCards(after.Combo.Cards)))
		if g.Finished(seat) {
			fmt.Println(turnStyle.Render(name + " is out!"))
		}
		return
	}
	fmt.Println(dimStyle.Render(name + " passes"))
	if after == nil && before != nil {
		fmt.Println(dimStyle.Render("table cleared"))
	}
}

func sameTrick(a, b *domain.Trick) bool {
	if a.Seat != b.Seat || len(a.Combo.Cards) != len(b.Combo.Cards) {
		return false
	}
	for i := range a.Combo.Cards {
		if a.Combo.Cards[i] != b.Combo.Cards[i] {
			return false
		}
	}
	return true
}

// printQuotes shows taunts that changed since the previous snapshot.
func printQuotes(g *engine.Game, previous []string) {
	for i := 0; i < g.PlayerCount(); i++ {
		q := g.Quote(i)
		if q == "" || q == previous[i] {
			continue
		}
		fmt.Println(quoteStyle.Render(fmt.Sprintf("%s: “%s”", g.SeatInfo(i).Name, q)))
	}
}

func currentQuotes(g *engine.Game) []string {
	quotes := make([]string, g.PlayerCount())
	for i := range quotes {
		quotes[i] = g.Quote(i)
	}
	return quotes
}
