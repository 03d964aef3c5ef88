package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"services-marketplace-server/models"
	"services-marketplace-server/websocket"
)

func (h *Handler) registerServiceRoutes(router *gin.RouterGroup) {
	st := h.store

	svc := router.Group("/services")
	{
		svc.POST("", createHandler(st.Services, "service", models.ServiceInput.ToModel, func(s *models.Service) {
			h.publish(websocket.ServiceCreated, s)
		}))
		svc.GET("/:id", getHandler(st.Services, "service"))
		svc.PUT("/:id", updateHandler(st.Services, "service", models.ServiceInput.ToModel))
		svc.DELETE("/:id", deleteHandler(st.Services))
		svc.GET("/:id/petitioner-services", childrenHandler(st.Services, "petitioner_services", func(c *gin.Context, id uint) ([]models.PetitionerService, error) {
			return st.PetitionerServicesByService(c.Request.Context(), id)
		}))
	}

	ps := router.Group("/petitioner-services")
	{
		ps.POST("", createHandler(st.PetitionerServices, "petitioner_service", models.PetitionerServiceInput.ToModel, nil))
		ps.GET("/:id", getHandler(st.PetitionerServices, "petitioner_service"))
		ps.PUT("/:id", updateHandler(st.PetitionerServices, "petitioner_service", models.PetitionerServiceInput.ToModel))
		ps.DELETE("/:id", deleteHandler(st.PetitionerServices))
		ps.GET("/:id/evaluations", h.getEvaluations)
	}

	evalPetitioner := router.Group("/evaluations/petitioner")
	{
		evalPetitioner.POST("", createHandler(st.EvaluationsPetitioner, "evaluation", models.EvaluationInput.ToEvaluationPetitioner, nil))
		evalPetitioner.GET("/:id", getHandler(st.EvaluationsPetitioner, "evaluation"))
		evalPetitioner.PUT("/:id", updateHandler(st.EvaluationsPetitioner, "evaluation", models.EvaluationInput.ToEvaluationPetitioner))
		evalPetitioner.DELETE("/:id", deleteHandler(st.EvaluationsPetitioner))
	}

	evalWorker := router.Group("/evaluations/worker")
	{
		evalWorker.POST("", createHandler(st.EvaluationsWorker, "evaluation", models.EvaluationInput.ToEvaluationWorker, nil))
		evalWorker.GET("/:id", getHandler(st.EvaluationsWorker, "evaluation"))
		evalWorker.PUT("/:id", updateHandler(st.EvaluationsWorker, "evaluation", models.EvaluationInput.ToEvaluationWorker))
		evalWorker.DELETE("/:id", deleteHandler(st.EvaluationsWorker))
	}
}

func (h *Handler) registerRequestRoutes(router *gin.RouterGroup) {
	st := h.store

	req := router.Group("/requests")
	{
		req.POST("", createHandler(st.Requests, "request", models.RequestInput.ToModel, func(r *models.Request) {
			h.publish(websocket.RequestCreated, r)
		}))
		req.GET("/:id", getHandler(st.Requests, "request"))
		req.PUT("/:id", updateHandler(st.Requests, "request", models.RequestInput.ToModel))
		req.DELETE("/:id", deleteHandler(st.Requests))
		req.GET("/:id/worker-requests", childrenHandler(st.Requests, "worker_requests", func(c *gin.Context, id uint) ([]models.WorkerRequest, error) {
			return st.WorkerRequestsByRequest(c.Request.Context(), id)
		}))
	}

	wr := router.Group("/worker-requests")
	{
		wr.POST("", createHandler(st.WorkerRequests, "worker_request", models.WorkerRequestInput.ToModel, nil))
		wr.GET("/:id", getHandler(st.WorkerRequests, "worker_request"))
		wr.PUT("/:id", updateHandler(st.WorkerRequests, "worker_request", models.WorkerRequestInput.ToModel))
		wr.DELETE("/:id", deleteHandler(st.WorkerRequests))
		wr.GET("/:id/reviews", h.getReviews)
	}

	reviewPetitioner := router.Group("/reviews/petitioner")
	{
		reviewPetitioner.POST("", createHandler(st.PetitionerReviews, "review", models.ReviewInput.ToPetitionerReview, nil))
		reviewPetitioner.GET("/:id", getHandler(st.PetitionerReviews, "review"))
		reviewPetitioner.PUT("/:id", updateHandler(st.PetitionerReviews, "review", models.ReviewInput.ToPetitionerReview))
		reviewPetitioner.DELETE("/:id", deleteHandler(st.PetitionerReviews))
	}

	reviewWorker := router.Group("/reviews/worker")
	{
		reviewWorker.POST("", createHandler(st.WorkerReviews, "review", models.ReviewInput.ToWorkerReview, nil))
		reviewWorker.GET("/:id", getHandler(st.WorkerReviews, "review"))
		reviewWorker.PUT("/:id", updateHandler(st.WorkerReviews, "review", models.ReviewInput.ToWorkerReview))
		reviewWorker.DELETE("/:id", deleteHandler(st.WorkerReviews))
	}
}

func (h *Handler) getEvaluations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	evaluations, err := h.store.EvaluationsFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"evaluations": evaluations})
}

func (h *Handler) getReviews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	reviews, err := h.store.ReviewsFor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) publish(msgType string, data interface{}) {
	if h.publisher != nil {
		h.publisher.Publish(msgType, data)
	}
}
