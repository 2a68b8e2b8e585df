package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"wdclabs/ai-office/internal/repositories"
)

// Worker drains the bio-assessment queue in the background. Routing and chat
// stay synchronous; only document-based assessments go through here.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(assessmentID uuid.UUID)
}

type worker struct {
	assessmentRepo    repositories.AssessmentRepository
	assessmentService AssessmentService
	jobQueue          chan uuid.UUID
	concurrency       int
	wg                sync.WaitGroup
	stopChan          chan struct{}
}

func NewWorker(
	assessmentRepo repositories.AssessmentRepository,
	assessmentService AssessmentService,
	concurrency int,
) Worker {
	return &worker{
		assessmentRepo:    assessmentRepo,
		assessmentService: assessmentService,
		jobQueue:          make(chan uuid.UUID, 100),
		concurrency:       concurrency,
		stopChan:          make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	// Pick up jobs left queued across restarts.
	w.wg.Add(1)
	go w.pollPendingJobs(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueJob implements Worker.
func (w *worker) EnqueueJob(assessmentID uuid.UUID) {
	select {
	case w.jobQueue <- assessmentID:
		log.Printf("📥 Assessment %s enqueued\n", assessmentID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue assessment %s\n", assessmentID)
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case assessmentID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing assessment %s\n", workerID, assessmentID)
			if err := w.assessmentService.ProcessAssessment(ctx, assessmentID); err != nil {
				log.Printf("❌ Worker #%d failed to process assessment %s: %v\n", workerID, assessmentID, err)
			} else {
				log.Printf("✅ Worker #%d completed assessment %s\n", workerID, assessmentID)
			}
		}
	}
}

func (w *worker) pollPendingJobs(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			pendingJobs, err := w.assessmentRepo.FindPendingJobs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending assessments: %v\n", err)
				continue
			}

			if len(pendingJobs) > 0 {
				log.Printf("📋 Found %d pending assessments\n", len(pendingJobs))
			}

			for _, job := range pendingJobs {
				w.EnqueueJob(job.ID)
			}
		}
	}
}
