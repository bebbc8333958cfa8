package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

const simulationWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type SimulationHandler struct {
	service *service.SimulationService
	log     *zap.Logger
}

func NewSimulationHandler(service *service.SimulationService, log *zap.Logger) *SimulationHandler {
	return &SimulationHandler{service: service, log: log}
}

// Stream handles GET /ws/simulation: it upgrades the connection, streams
// one JSON progress frame per tick and closes normally when done.
func (h *SimulationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("failed to upgrade simulation connection", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client never sends anything; a read error means it went away.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	err = h.service.Run(ctx, func(frame domain.ProgressFrame) error {
		_ = conn.SetWriteDeadline(time.Now().Add(simulationWriteWait))
		return conn.WriteJSON(frame)
	})
	if err != nil {
		h.log.Debug("simulation stream ended early", zap.Error(err))
		return
	}

	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "simulation complete"),
		time.Now().Add(simulationWriteWait),
	)
}
