package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/ataxx/internal/ataxx/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := ataxx(); err != nil {
		logrus.Fatal(err)
	}
}

func ataxx() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
