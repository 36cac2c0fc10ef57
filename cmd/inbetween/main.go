package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/inbetween/internal/config"
	"github.com/palemoky/inbetween/internal/deck"
	"github.com/palemoky/inbetween/internal/logger"
	"github.com/palemoky/inbetween/internal/session"
	"github.com/palemoky/inbetween/internal/ui/console"
	"github.com/palemoky/inbetween/internal/ui/model"
	"github.com/palemoky/inbetween/internal/ui/view"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	tui := flag.Bool("tui", false, "全屏界面模式")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	if err := logger.Init(cfg.Log.Dir, cfg.Log.MaxSizeBytes()); err != nil {
		fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	renderer := view.NewRenderer(view.Options{
		Color:           cfg.UI.ColorEnabled(),
		PercentDecimals: cfg.Display.PercentDecimals,
		EVDecimals:      cfg.Display.EVDecimals,
	})
	s := session.New(deck.New(), renderer, session.Options{
		StrictMenu:  cfg.Game.StrictMenu,
		ShowCounter: cfg.Game.CounterEnabled(),
	})

	if *tui || cfg.UI.Mode == config.ModeTUI {
		p := tea.NewProgram(model.NewCalculatorModel(s))
		if _, err := p.Run(); err != nil {
			logger.LogError("tui: %v", err)
			fmt.Fprintf(os.Stderr, "启动界面时出错: %v\n", err)
		}
		return
	}

	if err := console.Run(os.Stdin, os.Stdout, s); err != nil {
		logger.LogError("console: %v", err)
	}
}
