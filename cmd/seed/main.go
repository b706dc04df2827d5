package main

import (
	"context"
	"log"
	"time"

	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	domainrepo "complab/internal/domain/repository"
	"complab/internal/infrastructure/database"
	"complab/pkg/config"
	"complab/pkg/logger"
)

// Seeds the database with demo storefront data: a user with two addresses,
// the category tree, a handful of products, repair services, banners and
// the promo code registry. Safe to re-run only against an empty database.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if _, err := logger.Init(cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()

	if err := seedUsers(ctx, repository.NewGormUserRepository(db), repository.NewGormAddressRepository(db)); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	categories, err := seedCategories(ctx, repository.NewGormCategoryRepository(db))
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if err := seedProducts(ctx, repository.NewGormProductRepository(db), categories); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	if err := seedRepairServices(ctx, repository.NewGormRepairServiceRepository(db)); err != nil {
		log.Fatalf("Failed to seed repair services: %v", err)
	}
	if err := seedBanners(ctx, repository.NewGormBannerRepository(db)); err != nil {
		log.Fatalf("Failed to seed banners: %v", err)
	}
	if err := seedPromoCodes(ctx, repository.NewGormPromoCodeRepository(db)); err != nil {
		log.Fatalf("Failed to seed promo codes: %v", err)
	}

	logger.Info("Seeding completed")
}

func seedUsers(ctx context.Context, users domainrepo.UserRepository, addresses domainrepo.AddressRepository) error {
	user := &entity.User{
		ID:        "user-1",
		Email:     "ivan@example.com",
		FirstName: "Иван",
		LastName:  "Петров",
		Phone:     "+7 (999) 123-45-67",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100",
		CreatedAt: time.Now(),
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	home := &entity.Address{
		ID:         "addr-1",
		UserID:     user.ID,
		Title:      "Дом",
		FullName:   "Иван Петров",
		Phone:      "+7 (999) 123-45-67",
		City:       "Москва",
		Street:     "ул. Тверская",
		Building:   "12",
		Apartment:  "45",
		PostalCode: "125009",
		IsDefault:  true,
	}
	office := &entity.Address{
		ID:         "addr-2",
		UserID:     user.ID,
		Title:      "Офис",
		FullName:   "Иван Петров",
		Phone:      "+7 (999) 123-45-67",
		City:       "Москва",
		Street:     "ул. Арбат",
		Building:   "24",
		Apartment:  "301",
		PostalCode: "119002",
	}
	if err := addresses.Create(ctx, home); err != nil {
		return err
	}
	return addresses.Create(ctx, office)
}

func seedCategories(ctx context.Context, categories domainrepo.CategoryRepository) (map[string]*entity.Category, error) {
	roots := []*entity.Category{
		{ID: "1", Name: "Компьютеры и ноутбуки", Slug: "computers", Icon: "laptop", Order: 1, IsActive: true},
		{ID: "2", Name: "Комплектующие", Slug: "components", Icon: "cpu", Order: 2, IsActive: true},
		{ID: "3", Name: "Периферия", Slug: "peripherals", Icon: "keyboard", Order: 3, IsActive: true},
		{ID: "4", Name: "Сетевое оборудование", Slug: "networking", Icon: "wifi", Order: 4, IsActive: true},
		{ID: "5", Name: "Услуги ремонта", Slug: "repair-services", Icon: "wrench", Order: 5, IsActive: true},
	}

	children := []*entity.Category{
		{ID: "1-1", Name: "Ноутбуки", Slug: "laptops", Order: 1},
		{ID: "1-2", Name: "Настольные ПК", Slug: "desktop-pcs", Order: 2},
		{ID: "1-3", Name: "Моноблоки", Slug: "all-in-one", Order: 3},
		{ID: "2-1", Name: "Процессоры", Slug: "processors", Order: 1},
		{ID: "2-2", Name: "Видеокарты", Slug: "graphics-cards", Order: 2},
		{ID: "2-3", Name: "Оперативная память", Slug: "ram", Order: 3},
		{ID: "2-4", Name: "SSD накопители", Slug: "ssd", Order: 4},
		{ID: "2-5", Name: "Материнские платы", Slug: "motherboards", Order: 5},
		{ID: "2-6", Name: "Блоки питания", Slug: "power-supplies", Order: 6},
		{ID: "2-7", Name: "Корпуса", Slug: "cases", Order: 7},
		{ID: "2-8", Name: "Системы охлаждения", Slug: "cooling", Order: 8},
		{ID: "3-1", Name: "Мониторы", Slug: "monitors", Order: 1},
		{ID: "3-2", Name: "Клавиатуры", Slug: "keyboards", Order: 2},
		{ID: "3-3", Name: "Мыши", Slug: "mice", Order: 3},
		{ID: "3-4", Name: "Наушники и гарнитуры", Slug: "headsets", Order: 4},
		{ID: "3-5", Name: "Веб-камеры", Slug: "webcams", Order: 5},
		{ID: "4-1", Name: "Wi-Fi роутеры", Slug: "routers", Order: 1},
		{ID: "4-2", Name: "Сетевые карты", Slug: "network-cards", Order: 2},
	}

	bySlug := make(map[string]*entity.Category)
	for _, c := range roots {
		if err := categories.Create(ctx, c); err != nil {
			return nil, err
		}
		bySlug[c.Slug] = c
	}
	for _, c := range children {
		parentID := c.ID[:1]
		c.ParentID = &parentID
		c.IsActive = true
		if err := categories.Create(ctx, c); err != nil {
			return nil, err
		}
		bySlug[c.Slug] = c
	}
	return bySlug, nil
}

func seedProducts(ctx context.Context, products domainrepo.ProductRepository, categories map[string]*entity.Category) error {
	oldPrice := func(v int64) *int64 { return &v }
	now := time.Now()

	items := []*entity.Product{
		{
			ID:               "p-1",
			Name:             "ASUS ROG Strix G16 Gaming Laptop",
			Slug:             "asus-rog-strix-g16",
			ShortDescription: "Игровой ноутбук с RTX 4060 и Intel Core i7",
			Price:            149990,
			OldPrice:         oldPrice(169990),
			Brand:            "ASUS",
			SKU:              "NB-ASUS-G16",
			InStock:          true,
			StockQuantity:    12,
			CategorySlug:     "laptops",
			Images:           []string{"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=800"},
			Specifications: []entity.ProductSpecification{
				{Name: "Процессор", Value: "Intel Core i7-13650HX", Group: "Производительность"},
				{Name: "Видеокарта", Value: "NVIDIA GeForce RTX 4060 8GB", Group: "Производительность"},
				{Name: "Оперативная память", Value: "16GB DDR5", Group: "Производительность"},
				{Name: "Накопитель", Value: "512GB NVMe SSD", Group: "Хранение"},
			},
			IsNew:      true,
			IsFeatured: true,
			IsOnSale:   true,
		},
		{
			ID:               "p-2",
			Name:             "Apple MacBook Pro 14\" M3 Pro",
			Slug:             "macbook-pro-14-m3-pro",
			ShortDescription: "Профессиональный ноутбук на Apple Silicon",
			Price:            249990,
			Brand:            "Apple",
			SKU:              "NB-APPLE-MBP14",
			InStock:          true,
			StockQuantity:    5,
			CategorySlug:     "laptops",
			Specifications: []entity.ProductSpecification{
				{Name: "Процессор", Value: "Apple M3 Pro (12-core)", Group: "Производительность"},
				{Name: "GPU", Value: "18-core GPU", Group: "Производительность"},
			},
			IsNew:      true,
			IsFeatured: true,
		},
		{
			ID:               "p-3",
			Name:             "NVIDIA GeForce RTX 4080 Super Founders Edition",
			Slug:             "nvidia-rtx-4080-super-fe",
			ShortDescription: "Флагманская видеокарта для 4K-гейминга",
			Price:            119990,
			OldPrice:         oldPrice(134990),
			Brand:            "NVIDIA",
			SKU:              "GPU-NV-4080S",
			InStock:          true,
			StockQuantity:    8,
			CategorySlug:     "graphics-cards",
			Specifications: []entity.ProductSpecification{
				{Name: "Видеопамять", Value: "16GB GDDR6X", Group: "Память"},
				{Name: "CUDA ядра", Value: "10240", Group: "Архитектура"},
			},
			IsFeatured: true,
			IsOnSale:   true,
		},
		{
			ID:               "p-4",
			Name:             "AMD Radeon RX 7900 XTX",
			Slug:             "amd-rx-7900-xtx",
			ShortDescription: "Топовая видеокарта AMD с 24GB памяти",
			Price:            104990,
			Brand:            "AMD",
			SKU:              "GPU-AMD-7900XTX",
			InStock:          true,
			StockQuantity:    6,
			CategorySlug:     "graphics-cards",
			Specifications: []entity.ProductSpecification{
				{Name: "Видеопамять", Value: "24GB GDDR6", Group: "Память"},
			},
		},
		{
			ID:               "p-5",
			Name:             "Intel Core i9-14900K",
			Slug:             "intel-core-i9-14900k",
			ShortDescription: "24-ядерный процессор для энтузиастов",
			Price:            54990,
			Brand:            "Intel",
			SKU:              "CPU-INT-14900K",
			InStock:          true,
			StockQuantity:    20,
			CategorySlug:     "processors",
			Specifications: []entity.ProductSpecification{
				{Name: "Ядра/Потоки", Value: "24 (8P+16E) / 32", Group: "Архитектура"},
				{Name: "Turbo частота", Value: "6.0 GHz", Group: "Частоты"},
			},
		},
		{
			ID:               "p-6",
			Name:             "AMD Ryzen 9 7950X3D",
			Slug:             "amd-ryzen-9-7950x3d",
			ShortDescription: "Игровой процессор с 3D V-Cache",
			Price:            59990,
			Brand:            "AMD",
			SKU:              "CPU-AMD-7950X3D",
			InStock:          true,
			StockQuantity:    15,
			CategorySlug:     "processors",
			Specifications: []entity.ProductSpecification{
				{Name: "Ядра/Потоки", Value: "16 / 32", Group: "Архитектура"},
				{Name: "Кэш L3", Value: "128MB (с 3D V-Cache)", Group: "Кэш"},
			},
			IsFeatured: true,
		},
		{
			ID:               "p-7",
			Name:             "Samsung Odyssey G9 49\" DQHD",
			Slug:             "samsung-odyssey-g9-49",
			ShortDescription: "Сверхширокий игровой монитор 240Hz",
			Price:            129990,
			OldPrice:         oldPrice(149990),
			Brand:            "Samsung",
			SKU:              "MON-SAM-G9",
			InStock:          true,
			StockQuantity:    4,
			CategorySlug:     "monitors",
			Specifications: []entity.ProductSpecification{
				{Name: "Диагональ", Value: "49\"", Group: "Дисплей"},
				{Name: "Разрешение", Value: "5120x1440 (DQHD)", Group: "Дисплей"},
			},
			IsOnSale: true,
		},
		{
			ID:               "p-8",
			Name:             "LG UltraGear 27GP850-B",
			Slug:             "lg-ultragear-27gp850",
			ShortDescription: "27\" Nano IPS монитор 165Hz",
			Price:            44990,
			Brand:            "LG",
			SKU:              "MON-LG-27GP850",
			InStock:          false,
			StockQuantity:    0,
			CategorySlug:     "monitors",
			IsNew:            true,
		},
	}

	for _, p := range items {
		category, ok := categories[p.CategorySlug]
		if !ok {
			continue
		}
		p.CategoryID = category.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := products.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedRepairServices(ctx context.Context, services domainrepo.RepairServiceRepository) error {
	priceTo := func(v int64) *int64 { return &v }

	items := []*entity.RepairService{
		{
			ID:            "rs-1",
			Name:          "Замена матрицы ноутбука",
			Description:   "Замена поврежденного или неисправного экрана ноутбука",
			Category:      entity.RepairCategoryLaptop,
			EstimatedTime: "1-2 дня",
			PriceFrom:     3500,
			PriceTo:       priceTo(15000),
			IsPopular:     true,
		},
		{
			ID:            "rs-2",
			Name:          "Замена клавиатуры ноутбука",
			Description:   "Установка новой клавиатуры взамен поврежденной",
			Category:      entity.RepairCategoryLaptop,
			EstimatedTime: "1-3 часа",
			PriceFrom:     2000,
			PriceTo:       priceTo(8000),
			IsPopular:     true,
		},
		{
			ID:            "rs-3",
			Name:          "Чистка ноутбука от пыли",
			Description:   "Профессиональная чистка системы охлаждения и замена термопасты",
			Category:      entity.RepairCategoryLaptop,
			EstimatedTime: "1-2 часа",
			PriceFrom:     1500,
			PriceTo:       priceTo(3000),
			IsPopular:     true,
		},
		{
			ID:            "rs-6",
			Name:          "Сборка компьютера",
			Description:   "Профессиональная сборка ПК из комплектующих заказчика",
			Category:      entity.RepairCategoryDesktop,
			EstimatedTime: "2-4 часа",
			PriceFrom:     3000,
			PriceTo:       priceTo(7000),
			IsPopular:     true,
		},
		{
			ID:            "rs-7",
			Name:          "Диагностика компьютера",
			Description:   "Полная диагностика всех компонентов системного блока",
			Category:      entity.RepairCategoryDesktop,
			EstimatedTime: "1 час",
			PriceFrom:     500,
			PriceTo:       priceTo(1500),
		},
		{
			ID:            "rs-11",
			Name:          "Восстановление данных с HDD",
			Description:   "Восстановление информации с поврежденного жесткого диска",
			Category:      entity.RepairCategoryDataRecovery,
			EstimatedTime: "1-7 дней",
			PriceFrom:     5000,
			PriceTo:       priceTo(30000),
			IsPopular:     true,
		},
		{
			ID:            "rs-13",
			Name:          "Установка SSD",
			Description:   "Установка SSD с переносом системы и данных",
			Category:      entity.RepairCategoryUpgrade,
			EstimatedTime: "1-2 часа",
			PriceFrom:     1000,
			PriceTo:       priceTo(2500),
			IsPopular:     true,
		},
	}

	for _, s := range items {
		if err := services.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedBanners(ctx context.Context, banners domainrepo.BannerRepository) error {
	items := []*entity.Banner{
		{
			ID:              "b-1",
			Type:            entity.BannerTypeHero,
			Title:           "Зимняя распродажа",
			Subtitle:        "Скидки до 30% на видеокарты",
			Description:     "Успейте приобрести топовые видеокарты RTX 4000 по лучшим ценам",
			Image:           "https://images.unsplash.com/photo-1591488320449-011701bb6704?w=1200&h=500&fit=crop",
			Link:            "/catalog/graphics-cards",
			ButtonText:      "Смотреть каталог",
			BackgroundColor: "#1a1a2e",
			TextColor:       "#ffffff",
			IsActive:        true,
			Order:           1,
			DiscountPercent: 30,
		},
		{
			ID:              "b-2",
			Type:            entity.BannerTypeHero,
			Title:           "Новые ноутбуки 2024",
			Subtitle:        "Игровые и профессиональные модели",
			Description:     "Последние модели ASUS ROG, MSI и Apple MacBook уже в продаже",
			Image:           "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=1200&h=500&fit=crop",
			Link:            "/catalog/laptops",
			ButtonText:      "Выбрать ноутбук",
			BackgroundColor: "#16213e",
			TextColor:       "#ffffff",
			IsActive:        true,
			Order:           2,
		},
		{
			ID:              "b-3",
			Type:            entity.BannerTypeHero,
			Title:           "Профессиональный ремонт",
			Subtitle:        "Гарантия на все работы 6 месяцев",
			Description:     "Диагностика бесплатно при заказе ремонта",
			Image:           "https://images.unsplash.com/photo-1597872200969-2b65d56bd16b?w=1200&h=500&fit=crop",
			Link:            "/repair",
			ButtonText:      "Оставить заявку",
			BackgroundColor: "#0f3460",
			TextColor:       "#ffffff",
			IsActive:        true,
			Order:           3,
		},
		{
			ID:         "b-4",
			Type:       entity.BannerTypePromo,
			Title:      "Сборка ПК под ключ",
			Subtitle:   "От 5000₽",
			Image:      "https://images.unsplash.com/photo-1587831990711-23ca6441447b?w=400&h=300&fit=crop",
			Link:       "/services/pc-build",
			ButtonText: "Подробнее",
			IsActive:   true,
			Order:      1,
		},
		{
			ID:         "b-5",
			Type:       entity.BannerTypePromo,
			Title:      "Бесплатная доставка",
			Subtitle:   "При заказе от 10 000₽",
			Image:      "https://images.unsplash.com/photo-1566576912321-d58ddd7a6088?w=400&h=300&fit=crop",
			Link:       "/delivery",
			ButtonText: "Условия",
			IsActive:   true,
			Order:      2,
		},
		{
			ID:         "b-6",
			Type:       entity.BannerTypePromo,
			Title:      "Рассрочка 0%",
			Subtitle:   "На 12 месяцев",
			Image:      "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=400&h=300&fit=crop",
			Link:       "/credit",
			ButtonText: "Узнать больше",
			IsActive:   true,
			Order:      3,
		},
	}

	for _, b := range items {
		if err := banners.Create(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

func seedPromoCodes(ctx context.Context, promos domainrepo.PromoCodeRepository) error {
	items := []*entity.PromoCode{
		{Code: "WINTER10", Discount: 10, DiscountType: entity.DiscountTypePercentage, IsActive: true},
		{Code: "WELCOME500", Discount: 500, DiscountType: entity.DiscountTypeFixed, IsActive: true},
		{Code: "SALE15", Discount: 15, DiscountType: entity.DiscountTypePercentage, IsActive: true},
	}
	for _, p := range items {
		if err := promos.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
