// bookingd runs the in-memory development booking backend.
package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/borgmon/room-booker/pkg/devserver"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	authHeader := flag.String("auth-header", "X-Telegram-Initdata", "identity header name")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	gin.SetMode(gin.ReleaseMode)

	srv := devserver.New(*authHeader)
	logrus.WithField("addr", *addr).Info("Starting dev booking backend")
	if err := srv.Router().Run(*addr); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
