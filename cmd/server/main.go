package main

import (
	"flag"

	"github.com/joeblew999/plat-mailcraft/internal/config"
	"github.com/joeblew999/plat-mailcraft/internal/server"
	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	configFile := flag.String("f", "etc/mailcraft.yaml", "config file path")
	flag.Parse()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	logx.DisableStat()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	s, err := server.New(c)
	logx.Must(err)
	defer s.Stop()

	s.Start()
}
