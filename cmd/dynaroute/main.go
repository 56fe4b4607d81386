// DynaRoute simulates message propagation across a network whose
// connectivity changes over time, to study the cost/delivery tradeoffs of
// flooding and forwarding strategies under topology churn.
package main

func main() {
	Execute()
}
