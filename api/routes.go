package api

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alternun/gbt-minting-go/vm/systemSmartContracts"
)

type mintRequest struct {
	Caller  string `json:"caller" binding:"required"`
	Deposit string `json:"deposit" binding:"required"`
}

type previewRequest struct {
	Deposit string `json:"deposit" binding:"required"`
}

type upsertMineRequest struct {
	Caller      string `json:"caller" binding:"required"`
	MineID      uint32 `json:"mineId"`
	InferredGm  string `json:"inferredGm"`
	IndicatedGm string `json:"indicatedGm"`
	MeasuredGm  string `json:"measuredGm"`
	ProbableGm  string `json:"probableGm"`
	ProvenGm    string `json:"provenGm"`
	Enabled     bool   `json:"enabled"`
}

type setBpsRequest struct {
	Caller string `json:"caller" binding:"required"`
	Bps    uint32 `json:"bps"`
}

type setPausedRequest struct {
	Caller string `json:"caller" binding:"required"`
	Paused bool   `json:"paused"`
}

type setPriceRequest struct {
	Caller string `json:"caller" binding:"required"`
	Price  string `json:"price" binding:"required"`
}

func registerRoutes(router *gin.Engine, facade FacadeHandler) {
	router.GET("/mine/:id", getMineHandler(facade))
	router.GET("/mine/:id/capacity", mineCapacityHandler(facade))
	router.GET("/capacity/total", totalCapacityHandler(facade))
	router.GET("/capacity/available", availableCapacityHandler(facade))
	router.GET("/price", getPriceHandler(facade))
	router.GET("/balance/gbt/:address", balanceHandler(facade.GBTBalanceOf))
	router.GET("/balance/stable/:address", balanceHandler(facade.StableBalanceOf))

	router.POST("/mint/preview", previewMintHandler(facade))
	router.POST("/mint", mintHandler(facade))

	admin := router.Group("/admin")
	admin.POST("/mine", upsertMineHandler(facade))
	admin.POST("/fee", setBpsHandler(facade.SetFeeBps))
	admin.POST("/commercial-factor", setBpsHandler(facade.SetCommercialFactorBps))
	admin.POST("/pause", setPausedHandler(facade))
	admin.POST("/price", setPriceHandler(facade))
}

func respondOk(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func respondRejected(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func parseMineID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}

	return uint32(id), true
}

func parseAmount(c *gin.Context, raw string) (*big.Int, bool) {
	value, ok := big.NewInt(0).SetString(raw, 10)
	if !ok || value.Sign() < 0 {
		respondBadRequest(c, errInvalidAmount)
		return nil, false
	}

	return value, true
}

func getMineHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		mineID, ok := parseMineID(c)
		if !ok {
			return
		}

		record, err := facade.GetMine(mineID)
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"mine": record})
	}
}

func mineCapacityHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		mineID, ok := parseMineID(c)
		if !ok {
			return
		}

		capacity, err := facade.MineCapacity(mineID)
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"capacityGm": capacity.String()})
	}
}

func totalCapacityHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := facade.TotalCapacity()
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"totalCapacityGm": total.String()})
	}
}

func availableCapacityHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		available, err := facade.AvailableCapacity()
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"availableCapacityGm": available.String()})
	}
}

func getPriceHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		price, err := facade.GetPrice()
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"price": price.String()})
	}
}

func balanceHandler(balanceOf func(address []byte) (*big.Int, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		balance, err := balanceOf([]byte(c.Param("address")))
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"balance": balance.String()})
	}
}

func previewMintHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request previewRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}
		deposit, ok := parseAmount(c, request.Deposit)
		if !ok {
			return
		}

		preview, err := facade.PreviewMint(deposit)
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"preview": preview})
	}
}

func mintHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request mintRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}
		deposit, ok := parseAmount(c, request.Deposit)
		if !ok {
			return
		}

		grams, err := facade.Mint([]byte(request.Caller), deposit)
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"gbtOutGm": grams.String()})
	}
}

func upsertMineHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request upsertMineRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}

		quantities := make([]*big.Int, 5)
		for i, raw := range []string{
			request.InferredGm, request.IndicatedGm, request.MeasuredGm,
			request.ProbableGm, request.ProvenGm,
		} {
			if raw == "" {
				quantities[i] = big.NewInt(0)
				continue
			}
			value, ok := parseAmount(c, raw)
			if !ok {
				return
			}
			quantities[i] = value
		}

		record := &systemSmartContracts.MineRecord{
			InferredGm:  quantities[0],
			IndicatedGm: quantities[1],
			MeasuredGm:  quantities[2],
			ProbableGm:  quantities[3],
			ProvenGm:    quantities[4],
			Enabled:     request.Enabled,
		}
		err := facade.UpsertMine([]byte(request.Caller), request.MineID, record)
		if err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"mineId": request.MineID})
	}
}

func setBpsHandler(setter func(caller []byte, bps uint32) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request setBpsRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}

		if err := setter([]byte(request.Caller), request.Bps); err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"bps": request.Bps})
	}
}

func setPausedHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request setPausedRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}

		if err := facade.SetPaused([]byte(request.Caller), request.Paused); err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"paused": request.Paused})
	}
}

func setPriceHandler(facade FacadeHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request setPriceRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			respondBadRequest(c, err)
			return
		}
		price, ok := parseAmount(c, request.Price)
		if !ok {
			return
		}

		if err := facade.SetPrice([]byte(request.Caller), price); err != nil {
			respondRejected(c, err)
			return
		}

		respondOk(c, gin.H{"price": price.String()})
	}
}
