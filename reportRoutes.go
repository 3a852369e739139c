package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// =========================
// 📊 Laporan Penjualan
// =========================
func ReportRoutes(r *gin.Engine, store *MySQLStore) {
	// 🔐 Khusus admin
	report := r.Group("/api/v1/admin")
	report.Use(AuthMiddleware(), RoleMiddleware(RoleAdmin))
	{
		report.GET("/report", func(c *gin.Context) {
			GetSalesReport(c, store)
		})
		report.GET("/sales", func(c *gin.Context) {
			GetAllSales(c, store)
		})
	}
}

// ++++++++++++++++++++++++
//
//	Report READ
//
// ++++++++++++++++++++++++
// Rentang tanggal opsional lewat query ?start=YYYY-MM-DD&end=YYYY-MM-DD
func GetSalesReport(c *gin.Context, store *MySQLStore) {
	report, err := store.FetchReport(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil laporan penjualan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ++++++++++++++++++++++++
//
//	Sales READ
//
// ++++++++++++++++++++++++
func GetAllSales(c *gin.Context, store *MySQLStore) {
	sales, err := store.FetchAllSales()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengambil data penjualan"})
		return
	}

	if len(sales) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "⚠️ Belum ada penjualan",
			"data":    []SaleDetailModel{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sales})
}
