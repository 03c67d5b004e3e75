package config

import (
	"PlantyChat/entity"
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	OpenAI struct {
		ApiKey         string `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		ChatModel      string `yaml:"chat_model" env-default:"gpt-4o-mini"`
		EmbeddingModel string `yaml:"embedding_model" env-default:"text-embedding-3-small"`
		BaseURL        string `yaml:"base_url" env-default:""`
		TopK           int    `yaml:"top_k" env-default:"5"`
	} `yaml:"openai"`
	Shopify struct {
		StoreDomain string `yaml:"store_domain" env:"SHOPIFY_STORE_DOMAIN" env-default:""`
		AccessToken string `yaml:"access_token" env:"SHOPIFY_ADMIN_API_KEY" env-default:""`
		ApiVersion  string `yaml:"api_version" env-default:"2024-07"`
		PageLimit   int    `yaml:"page_limit" env-default:"50"`
	} `yaml:"shopify"`
	Store struct {
		AssistantName string            `yaml:"assistant_name" env-default:"Planty"`
		SiteName      string            `yaml:"site_name" env-default:"Matihaat.com"`
		Info          entity.StoreInfo  `yaml:"info"`
		Faq           []entity.FAQEntry `yaml:"faq"`
	} `yaml:"store"`
	Listen struct {
		BindIP        string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port          string `yaml:"port" env-default:"9100"`
		AllowedOrigin string `yaml:"allowed_origin" env-default:"https://matihaat.com"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance = &Config{}
		if err = cleanenv.ReadConfig(path, instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			err = fmt.Errorf("%s; %s", err, desc)
			instance = nil
			log.Fatal(err)
		}
	})
	return instance
}
