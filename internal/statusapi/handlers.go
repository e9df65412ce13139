package statusapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleHealth(c *gin.Context) {
	status := "healthy"
	running := false
	if s.src == nil {
		status = "unhealthy"
	} else {
		running = s.src.Snapshot().Running
	}

	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, ApiResponse{
		Status: "success",
		Data: HealthResponse{
			Status:    status,
			Running:   running,
			Timestamp: time.Now(),
			Version:   s.version,
		},
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: StatusResponse{
			Snapshot: s.src.Snapshot(),
			Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		},
	})
}

func (s *Server) handleColor(c *gin.Context) {
	snap := s.src.Snapshot()
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: ColorResponse{
			Clear:  snap.Clear,
			Start:  snap.Start,
			End:    snap.End,
			Factor: snap.Factor,
		},
	})
}

func (s *Server) handleDancer(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	dancers := s.src.Snapshot().Dancers
	if idx >= len(dancers) {
		c.JSON(http.StatusNotFound, ApiResponse{
			Status: "error",
			Error:  "dancer not found",
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: dancers[idx]})
}

func (s *Server) handleLight(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	lights := s.src.Snapshot().Lights
	if idx >= len(lights) {
		c.JSON(http.StatusNotFound, ApiResponse{
			Status: "error",
			Error:  "light not found",
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{Status: "success", Data: lights[idx]})
}

func parseIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "invalid index: " + c.Param("index"),
		})
		return 0, false
	}
	return idx, true
}
