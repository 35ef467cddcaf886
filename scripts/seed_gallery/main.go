package main

import (
	"fmt"
	"log"

	"github.com/myhomesite/internal/config"
	"github.com/myhomesite/internal/db"
	"github.com/myhomesite/internal/service"
)

// 施工案例测试数据生成器
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	var count int64
	db.DB.Model(&db.GalleryImage{}).Count(&count)
	if count > 0 {
		fmt.Println("图库已有数据，跳过初始化")
		return
	}

	galleries := service.NewGalleryService(db.DB)
	samples := []service.GalleryInput{
		{Title: "Merbau Entertaining Deck", Description: "Elevated merbau deck with built-in seating", ImageURL: "/static/uploads/sample-deck.jpg", Category: "decking", DisplayOrder: 1},
		{Title: "Colorbond Pergola", Description: "Flat-roof Colorbond pergola over alfresco area", ImageURL: "/static/uploads/sample-pergola.jpg", Category: "pergola", DisplayOrder: 2},
		{Title: "Weatherboard Restoration", Description: "Full exterior restoration of a Californian bungalow", ImageURL: "/static/uploads/sample-weatherboard.jpg", Category: "weatherboard", DisplayOrder: 3},
	}

	for _, input := range samples {
		if _, err := galleries.Create(input); err != nil {
			log.Fatal("创建图库记录失败:", err)
		}
	}

	fmt.Printf("已创建 %d 条图库记录\n", len(samples))
}
