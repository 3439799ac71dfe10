// Qedserve hosts the qeditor HTTP/WebSocket document service: one
// process multiplexing many independently-editable documents for
// remote batch clients, each document reachable at its own id.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/eaburns/qed/qeditor"
	"github.com/gorilla/mux"
)

var configPath = flag.String("config", "", "path to a TOML config file")

func main() {
	flag.Parse()

	cfg := qeditor.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = qeditor.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qedserve: failed to load config:", err)
			os.Exit(1)
		}
	}

	srv := qeditor.NewServer(cfg)
	if cfg.LogPath != "" {
		f, err := os.Create(cfg.LogPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "qedserve: failed to open log:", err)
			os.Exit(1)
		}
		defer f.Close()
		srv.SetLogOutput(f)
	}

	r := mux.NewRouter()
	srv.RegisterHandlers(r)

	fmt.Fprintln(os.Stderr, "qedserve: listening on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		fmt.Fprintln(os.Stderr, "qedserve:", err)
		os.Exit(1)
	}
}
