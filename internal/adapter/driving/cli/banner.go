package cli

import (
	"fmt"

	"github.com/diillson/runway-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
        /$$$$$$$  /$$   /$$ /$$   /$$ /$$      /$$  /$$$$$$  /$$     /$$
       | $$__  $$| $$  | $$| $$$ | $$| $$  /$ | $$ /$$__  $$|  $$   /$$/
       | $$  \ $$| $$  | $$| $$$$| $$| $$ /$$$| $$| $$  \ $$ \  $$ /$$/
       | $$$$$$$/| $$  | $$| $$ $$ $$| $$/$$ $$ $$| $$$$$$$$  \  $$$$/
       | $$__  $$| $$  | $$| $$  $$$$| $$$$_  $$$$| $$__  $$   \  $$/
       | $$  \ $$| $$  | $$| $$\  $$$| $$$/ \  $$$| $$  | $$    | $$
       | $$  | $$|  $$$$$$/| $$ \  $$| $$/   \  $$| $$  | $$    | $$
       |__/  |__/ \______/ |__/  \__/|__/     \__/|__/  |__/    |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(cyan(fmt.Sprintf("Burn Rate & Runway Calculator (v%s)", version.FormatVersion())))
}
