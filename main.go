package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"weather-companion/app"
	"weather-companion/datasource"
	"weather-companion/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	city := flag.String("city", "", "City to fetch weather for")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	dataFile := flag.String("data", "", "Path to the persisted JSON document (overrides config)")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for one fetch cycle")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	interactive := flag.Bool("interactive", false, "Read commands from stdin")
	addTodo := flag.String("add-todo", "", "Add a to-do item and exit")
	removeTodo := flag.Int("remove-todo", -1, "Remove the to-do item at this index and exit")
	listTodos := flag.Bool("list-todos", false, "List to-do items and exit")
	flag.Parse()

	// Load configuration; a missing file falls back to defaults since
	// the API key can come from the environment.
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		config = datasource.DefaultConfig()
	}

	path := config.DataFile
	if *dataFile != "" {
		path = *dataFile
	}
	st := store.New(path)

	// To-do operations work entirely against the persisted document.
	if *addTodo != "" || *removeTodo >= 0 || *listTodos {
		runTodoCommand(st, *addTodo, *removeTodo)
		return
	}

	// API key priority: environment variable over config file.
	apiKey := os.Getenv("OWM_API_KEY")
	if apiKey == "" {
		apiKey = config.OpenWeatherMap.APIKey
	}
	if apiKey == "" {
		log.Fatal("No API key provided: set OWM_API_KEY or openWeatherMap.apiKey in the config file")
	}

	var source datasource.Source = datasource.NewClient(apiKey, 10*time.Second)
	if *enableRateLimiting {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
		// Allow bursts of up to 5 requests
		source = datasource.NewRateLimitedSource(source, 1.0, 5)
	}

	application := app.New(source, st)

	if *interactive {
		runInteractive(application, st, *timeout)
		return
	}

	target := strings.TrimSpace(*city)
	if target == "" {
		target = config.DefaultCity
	}

	doc, err := st.Load()
	if err != nil {
		log.Printf("Warning: could not load saved data: %v", err)
	}
	state := app.FromDocument(doc)

	if target == "" {
		// No city given: show whatever was saved from the last run.
		if state.City == "" {
			fmt.Println("No city given and no saved data. Run with -city <name>.")
			return
		}
		printState(state)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := application.RunCycle(ctx, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		os.Exit(1)
	}

	printState(state.Apply(result))
}

// runTodoCommand applies a single to-do mutation to the document and
// prints the resulting list.
func runTodoCommand(st *store.Store, addText string, removeIndex int) {
	doc, err := st.Load()
	if err != nil {
		log.Fatalf("Failed to load saved data: %v", err)
	}
	state := app.FromDocument(doc)

	changed := false
	if addText != "" {
		state = state.AddTodo(addText)
		changed = true
	}
	if removeIndex >= 0 {
		state = state.RemoveTodo(removeIndex)
		changed = true
	}

	if changed {
		if err := st.SaveTodos(state.Todos); err != nil {
			log.Printf("Warning: could not save to-do items: %v", err)
		}
	}

	fmt.Println("My To-Do List:")
	for i, item := range state.Todos {
		fmt.Printf("  %d. %s\n", i, item)
	}
}

// runInteractive reads commands from stdin: a city name runs a fetch
// cycle (superseding any in-flight one), "todo add <text>" and
// "todo rm <index>" edit the list, "quit" exits.
func runInteractive(application *app.App, st *store.Store, timeout time.Duration) {
	doc, err := st.Load()
	if err != nil {
		log.Printf("Warning: could not load saved data: %v", err)
	}
	state := app.FromDocument(doc)
	printState(state)

	requester := app.NewRequester(application, timeout)
	defer requester.Stop()

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Enter a city name, 'todo add <text>', 'todo rm <index>', or 'quit'.")
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				return
			}
			line = strings.TrimSpace(line)
			switch {
			case line == "":
			case line == "quit":
				return
			case strings.HasPrefix(line, "todo add "):
				state = state.AddTodo(strings.TrimPrefix(line, "todo add "))
				if err := st.SaveTodos(state.Todos); err != nil {
					log.Printf("Warning: could not save to-do items: %v", err)
				}
				printTodos(state.Todos)
			case strings.HasPrefix(line, "todo rm "):
				index, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "todo rm ")))
				if err != nil {
					fmt.Println("Usage: todo rm <index>")
					continue
				}
				state = state.RemoveTodo(index)
				if err := st.SaveTodos(state.Todos); err != nil {
					log.Printf("Warning: could not save to-do items: %v", err)
				}
				printTodos(state.Todos)
			default:
				fmt.Printf("Fetching weather for %s...\n", line)
				requester.Request(context.Background(), line)
			}
		case outcome := <-requester.Results():
			if outcome.Err != nil {
				fmt.Println(app.UserMessage(outcome.Err))
				continue
			}
			state = state.Apply(outcome.Result)
			printState(state)
		case sig := <-shutdown:
			fmt.Printf("Shutting down due to %s signal\n", sig)
			return
		}
	}
}

func printState(state app.State) {
	if state.Summary != "" {
		fmt.Println(state.Summary)
	}
	if len(state.Suggestions) > 0 {
		fmt.Println("Weather-Based Suggestions:")
		for _, suggestion := range state.Suggestions {
			fmt.Printf("  %s\n", suggestion)
		}
		fmt.Println()
	}
	printTodos(state.Todos)
}

func printTodos(todos []string) {
	if len(todos) == 0 {
		return
	}
	fmt.Println("My To-Do List:")
	for i, item := range todos {
		fmt.Printf("  %d. %s\n", i, item)
	}
	fmt.Println()
}
