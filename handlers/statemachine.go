package handlers

import (
	"net/http"

	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo documents the order lifecycle. The preparing and
// delivered legs are declared but not yet driven by any endpoint.
func GetStateMachineInfo(c *gin.Context) {
	var transitions []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   transitions,
		"terminal_states": []string{"delivered", "cancelled"},
		"description":     "Order lifecycle state machine",
	})
}
