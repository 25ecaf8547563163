package main

import (
	"os"

	"github.com/Azartis/Konsultabot2-sub000/internal/app"
)

// @title        KonsultaBot API
// @version      1.0
// @description  Campus IT helpdesk assistant: device troubleshooting, campus information and chat history.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
