package routes

import (
	"github.com/gin-gonic/gin"

	"services-marketplace-server/models"
)

func (h *Handler) registerUserRoutes(router *gin.RouterGroup) {
	st := h.store

	users := router.Group("/users")
	{
		users.POST("", createHandler(st.Users, "user", models.UserInput.ToModel, nil))
		users.GET("/:id", getHandler(st.Users, "user"))
		users.PUT("/:id", selfOnly(), updateHandler(st.Users, "user", models.UserInput.ToModel))
		users.DELETE("/:id", selfOnly(), deleteHandler(st.Users))
		users.GET("/:id/logins", childrenHandler(st.Users, "logins", func(c *gin.Context, id uint) ([]models.UserLogin, error) {
			return st.LoginsByUser(c.Request.Context(), id)
		}))
		users.GET("/:id/worker", childHandler("worker", func(c *gin.Context, id uint) (*models.Worker, error) {
			return st.WorkerByUser(c.Request.Context(), id)
		}))
		users.GET("/:id/petitioner", childHandler("petitioner", func(c *gin.Context, id uint) (*models.Petitioner, error) {
			return st.PetitionerByUser(c.Request.Context(), id)
		}))
	}

	logins := router.Group("/logins")
	{
		logins.POST("", h.createLogin)
		logins.GET("/:id", getHandler(st.Logins, "login"))
		logins.PUT("/:id", ownedBy(st.Logins, loginOwner), h.updateLogin)
		logins.DELETE("/:id", ownedBy(st.Logins, loginOwner), deleteHandler(st.Logins))
	}

	workers := router.Group("/workers")
	{
		workers.POST("", createOwnRole(st.Workers, "worker", func(in models.RoleInput) models.Worker {
			return models.Worker{UserID: in.UserID}
		}))
		workers.GET("/:id", getHandler(st.Workers, "worker"))
		workers.DELETE("/:id", ownedBy(st.Workers, workerOwner), deleteHandler(st.Workers))
		workers.GET("/:id/services", childrenHandler(st.Workers, "services", func(c *gin.Context, id uint) ([]models.Service, error) {
			return st.ServicesByWorker(c.Request.Context(), id)
		}))
		workers.GET("/:id/worker-requests", childrenHandler(st.Workers, "worker_requests", func(c *gin.Context, id uint) ([]models.WorkerRequest, error) {
			return st.WorkerRequestsByWorker(c.Request.Context(), id)
		}))
	}

	petitioners := router.Group("/petitioners")
	{
		petitioners.POST("", createOwnRole(st.Petitioners, "petitioner", func(in models.RoleInput) models.Petitioner {
			return models.Petitioner{UserID: in.UserID}
		}))
		petitioners.GET("/:id", getHandler(st.Petitioners, "petitioner"))
		petitioners.DELETE("/:id", ownedBy(st.Petitioners, petitionerOwner), deleteHandler(st.Petitioners))
		petitioners.GET("/:id/requests", childrenHandler(st.Petitioners, "requests", func(c *gin.Context, id uint) ([]models.Request, error) {
			return st.RequestsByPetitioner(c.Request.Context(), id)
		}))
		petitioners.GET("/:id/petitioner-services", childrenHandler(st.Petitioners, "petitioner_services", func(c *gin.Context, id uint) ([]models.PetitionerService, error) {
			return st.PetitionerServicesByPetitioner(c.Request.Context(), id)
		}))
	}
}
