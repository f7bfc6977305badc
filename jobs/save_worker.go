package jobs

import (
	"sync"

	"github.com/Rambadrinathan/vatika-studio/logger"
	"github.com/Rambadrinathan/vatika-studio/services"
)

// SaveJob persists one generated design: upload the render, then upsert the
// design row. Saving happens off the request path so a slow disk or database
// never delays the generation response.
type SaveJob struct {
	UserID        uint
	Budget        int
	SpaceType     string
	RenderDataURI string
	Prompt        string
}

// DesignUpdate is sent to SSE subscribers when a design finishes saving.
type DesignUpdate struct {
	UserID    uint   `json:"user_id"`
	Budget    int    `json:"budget"`
	SpaceType string `json:"space_type"`
	RenderURL string `json:"render_url"`
}

// SaveWorker processes design save jobs in the background.
type SaveWorker struct {
	jobs        chan SaveJob
	designs     *services.DesignService
	renders     *services.RenderStore
	subscribers map[chan DesignUpdate]bool
	subMux      sync.RWMutex
}

var (
	worker     *SaveWorker
	workerOnce sync.Once
)

// GetWorker returns the singleton SaveWorker instance.
func GetWorker() *SaveWorker {
	workerOnce.Do(func() {
		worker = &SaveWorker{
			jobs:        make(chan SaveJob, 100),
			designs:     services.NewDesignService(),
			renders:     services.NewRenderStore(),
			subscribers: make(map[chan DesignUpdate]bool),
		}
		go worker.run()
		logger.Info("Design save worker started")
	})
	return worker
}

// Enqueue adds a save job to the queue.
func (w *SaveWorker) Enqueue(job SaveJob) {
	select {
	case w.jobs <- job:
		logger.Info("Design save enqueued", "user_id", job.UserID, "budget", job.Budget, "space_type", job.SpaceType)
	default:
		logger.Warn("Design save queue full, dropping job", "user_id", job.UserID)
	}
}

// Subscribe registers a channel to receive design-saved updates.
func (w *SaveWorker) Subscribe(ch chan DesignUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	w.subscribers[ch] = true
}

// Unsubscribe removes a channel from design updates.
func (w *SaveWorker) Unsubscribe(ch chan DesignUpdate) {
	w.subMux.Lock()
	defer w.subMux.Unlock()
	delete(w.subscribers, ch)
	close(ch)
}

func (w *SaveWorker) run() {
	for job := range w.jobs {
		w.processJob(job)
	}
}

func (w *SaveWorker) processJob(job SaveJob) {
	logger.Info("Saving design", "user_id", job.UserID, "budget", job.Budget, "space_type", job.SpaceType)

	renderURL, err := w.renders.Put(job.UserID, job.Budget, job.SpaceType, job.RenderDataURI)
	if err != nil {
		logger.Error("Failed to store render image", "user_id", job.UserID, "error", err)
		return
	}

	if _, err := w.designs.Save(job.UserID, job.Budget, job.SpaceType, renderURL, job.Prompt); err != nil {
		logger.Error("Failed to save design", "user_id", job.UserID, "error", err)
		return
	}

	logger.Info("Design saved", "user_id", job.UserID, "render_url", renderURL)

	update := DesignUpdate{
		UserID:    job.UserID,
		Budget:    job.Budget,
		SpaceType: job.SpaceType,
		RenderURL: renderURL,
	}

	w.subMux.RLock()
	for ch := range w.subscribers {
		select {
		case ch <- update:
		default:
			// Drop update if subscriber is slow
		}
	}
	w.subMux.RUnlock()
}
