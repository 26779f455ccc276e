package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

type RigLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewRigLoop(server *Server, tickRate int) *RigLoop {
	return &RigLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (r *RigLoop) Run() {
	r.running = true
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	log.Printf("[director] rig loop started at %d ticks/second", r.tickRate)

	for {
		select {
		case <-r.stopChan:
			r.running = false
			log.Println("[director] rig loop stopped")
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *RigLoop) Stop() {
	close(r.stopChan)
}

func (r *RigLoop) tick() {
	r.server.stepRig(1.0 / float32(r.tickRate))

	if err := srvsync.DoSync(); err != nil {
		log.Printf("[director] sync error: %v", err)
	}
}
