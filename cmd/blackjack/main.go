// blackjack is the dealer and player CLI for discoverable network
// blackjack: one binary serves the table, joins it, or watches it.
package main

import "github.com/hadari24/blackjack-network/pkg/cli"

func main() {
	cli.Execute()
}
