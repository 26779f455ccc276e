package core

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/softlock-games/viewfinder/shared/messages"
	"github.com/softlock-games/viewfinder/shared/stagedata"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// zoomGlideSeconds is how long a server-side zoom glide takes.
const zoomGlideSeconds float32 = 0.4

var easeOutQuad = ease.OutQuad

// Server is the headless director: it owns the rig world and broadcasts it to
// every connected viewer over websocket ECS sync.
type Server struct {
	world     donburi.World
	loop      *RigLoop
	transport *transports.WsServerTransport

	name      string
	version   string
	stageName string

	cameras    []*rigCamera
	rigEntity  donburi.Entity
	activeSlot int

	autoCycleSeconds float64
	sinceCut         float64
	manualControl    bool

	clients map[*router.NetworkClient]bool
	mu      sync.RWMutex
}

// NewServer creates a director for the given stage. A nil stage means the
// standard two-camera rig.
func NewServer(tickRate int, name, version string, stage *stagedata.Stage, autoCycleSeconds float64) (*Server, error) {
	world := donburi.NewWorld()

	s := &Server{
		world:            world,
		name:             name,
		version:          version,
		autoCycleSeconds: autoCycleSeconds,
		clients:          make(map[*router.NetworkClient]bool),
	}
	if stage != nil {
		s.stageName = stage.Name
	}
	s.loop = NewRigLoop(s, tickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	if err := s.buildRig(stage); err != nil {
		return nil, err
	}

	s.setupRouterCallbacks()

	return s, nil
}

// Start begins the server on the given websocket port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[director] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoinRequest(client, req)
	})

	router.On(func(client *router.NetworkClient, msg messages.ActivateCamera) {
		s.onActivateCamera(client, msg)
	})

	router.On(func(client *router.NetworkClient, msg messages.SetZoom) {
		s.onSetZoom(client, msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[director] client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		log.Printf("[director] rejecting %s: version %q (want %q)", client.Id(), req.Version, s.version)
		if err := client.SendMessage(messages.JoinRejected{
			Reason: "version mismatch: server requires " + s.version,
		}); err != nil {
			log.Printf("[director] failed to send rejection: %v", err)
		}
		return
	}

	s.mu.Lock()
	s.clients[client] = true
	viewers := len(s.clients)
	s.mu.Unlock()

	if err := client.SendMessage(messages.JoinAccepted{
		ServerName: s.name,
		TickRate:   s.loop.tickRate,
		Stage:      s.stageName,
	}); err != nil {
		log.Printf("[director] failed to send join accept: %v", err)
		return
	}

	log.Printf("[director] viewer %q joined (%d connected)", req.ClientName, viewers)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("[director] client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("[director] client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.clients, client)
	if len(s.clients) == 0 {
		// Last viewer gone: resume the auto-cycle.
		s.manualControl = false
	}
	s.mu.Unlock()
}

func (s *Server) onActivateCamera(client *router.NetworkClient, msg messages.ActivateCamera) {
	s.mu.Lock()
	s.manualControl = true
	err := s.setActiveSlotLocked(msg.Slot)
	s.mu.Unlock()

	if err != nil {
		log.Printf("[director] activate from %s rejected: %v", client.Id(), err)
	}
}

func (s *Server) onSetZoom(client *router.NetworkClient, msg messages.SetZoom) {
	if err := s.SetZoomTarget(msg.Slot, float32(msg.Target)); err != nil {
		log.Printf("[director] zoom from %s rejected: %v", client.Id(), err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// ViewerCount returns the number of joined viewers
func (s *Server) ViewerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// ActiveSlot returns the slot currently live.
func (s *Server) ActiveSlot() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeSlot
}
