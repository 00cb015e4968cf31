package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"pawsconnect-http-service/internal/domain/models"
	"pawsconnect-http-service/internal/infrastructure/config"
)

// 主题常量
const (
	// 新报告通知主题
	TopicReportCreated = "pawsconnect/reports/new"

	// 申请状态变更通知主题
	TopicApplicationStatus = "pawsconnect/applications/status"
)

// InterfaceNotifyService 定义事件通知服务接口
// 所有发布都是尽力而为：通知失败不影响主流程
type InterfaceNotifyService interface {
	Connect() error
	Disconnect()
	PublishReportCreated(report *models.Report) error
	PublishApplicationStatus(applicationID uint, status string) error
}

// NotifyMessage MQTT消息基础结构
type NotifyMessage struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// NotifyService 通过MQTT向订阅方（合作组织看板等）推送事件
type NotifyService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex // 保护IsConnected字段的读写
	PublishMutex   sync.Mutex   // 用于保护MQTT消息发布
}

// NewNotifyService 创建一个新的事件通知服务
// 未配置MQTT_BROKER_URL时返回的服务所有操作都是空操作
func NewNotifyService(cfg *config.Config) InterfaceNotifyService {
	s := &NotifyService{
		Config: cfg,
	}

	if cfg.MQTTBrokerURL == "" {
		return s
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	opts.SetClientID(cfg.MQTTClientID)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("MQTT连接丢失: %v", err)
		s.connectedMutex.Lock()
		s.IsConnected = false
		s.connectedMutex.Unlock()
	})

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Printf("MQTT已连接: %s", cfg.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.IsConnected = true
		s.connectedMutex.Unlock()
	})

	s.Client = mqtt.NewClient(opts)
	return s
}

// Connect 连接到MQTT服务器
func (s *NotifyService) Connect() error {
	if s.Client == nil {
		return nil
	}

	token := s.Client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT连接失败: %w", token.Error())
	}

	s.connectedMutex.Lock()
	s.IsConnected = true
	s.connectedMutex.Unlock()
	return nil
}

// Disconnect 断开MQTT连接
func (s *NotifyService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// PublishReportCreated 推送新报告事件
func (s *NotifyService) PublishReportCreated(report *models.Report) error {
	return s.publish(TopicReportCreated, NotifyMessage{
		Type:      "report_created",
		Timestamp: time.Now().Unix(),
		Payload: map[string]any{
			"ticket_id": report.TicketID,
			"urgency":   report.Urgency,
			"lat":       report.Lat,
			"lng":       report.Lng,
		},
	})
}

// PublishApplicationStatus 推送申请状态变更事件
func (s *NotifyService) PublishApplicationStatus(applicationID uint, status string) error {
	return s.publish(TopicApplicationStatus, NotifyMessage{
		Type:      "application_status",
		Timestamp: time.Now().Unix(),
		Payload: map[string]any{
			"application_id": applicationID,
			"status":         status,
		},
	})
}

// publish 序列化并发布消息，未连接时直接丢弃
func (s *NotifyService) publish(topic string, msg NotifyMessage) error {
	if s.Client == nil {
		return nil
	}

	s.connectedMutex.RLock()
	connected := s.IsConnected && s.Client.IsConnected()
	s.connectedMutex.RUnlock()
	if !connected {
		return nil
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	token := s.Client.Publish(topic, 0, false, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("发布MQTT消息失败: %w", token.Error())
	}
	return nil
}
