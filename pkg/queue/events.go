package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishAuditRecord 发布 ed.audit.record 事件。
// 业务层在操作成功后调用，审计落库由后台消费者异步完成，失败不阻塞请求。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishAuditRecord(pub message.Publisher, payload AuditRecordPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicAuditRecord, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicAuditRecord, msg)
}

// ParseAuditRecord 将 Watermill 消息解析为强类型 Envelope（AuditRecordPayload）。
func ParseAuditRecord(msg *message.Message) (Message[AuditRecordPayload], error) {
	return ParseWatermillMessage[AuditRecordPayload](msg)
}

// PublishFileUploaded 发布 ed.file.uploaded 事件。
// 文件写入对象存储并完成元数据落库后触发，通知下游流程（审计、通知等）。
func PublishFileUploaded(pub message.Publisher, payload FileUploadedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicFileUploaded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicFileUploaded, msg)
}

// ParseFileUploaded 将 Watermill 消息解析为强类型 Envelope（FileUploadedPayload）。
func ParseFileUploaded(msg *message.Message) (Message[FileUploadedPayload], error) {
	return ParseWatermillMessage[FileUploadedPayload](msg)
}
