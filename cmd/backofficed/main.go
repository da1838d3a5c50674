// backofficed - the TradingGrow admin back office API server.
package main

import (
	"github.com/tradinggrow/backoffice/pkg/cli"
)

func main() {
	cli.Execute()
}
